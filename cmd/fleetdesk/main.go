package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetdesk/internal/app/services/auth"
	"fleetdesk/internal/app/services/fleet"
	"fleetdesk/internal/app/services/policy"
	"fleetdesk/internal/app/services/rental"
	"fleetdesk/internal/app/services/report"
	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/infra/config"
	"fleetdesk/internal/infra/db/mongo"
	ginserver "fleetdesk/internal/infra/http/gin"
	"fleetdesk/internal/infra/obs"
	"fleetdesk/internal/infra/storage/jsonfile"
	"fleetdesk/internal/infra/storage/memory"
	"fleetdesk/internal/infra/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage initialization failed", "error", err, "mode", cfg.StorageMode)
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("storage ready", "mode", cfg.StorageMode)

	app := buildApplication(repos, logger)

	if cfg.ServeHTTP {
		server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, ginserver.Handlers{
			Catalog: ginserver.CatalogHandler{Fleet: app.fleet, Rental: app.rental},
			Booking: ginserver.BookingHandler{Rental: app.rental},
			Report:  ginserver.ReportHandler{Reports: app.reports},
		})
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("http shutdown failed", "error", err)
			}
		}()
		go func() {
			logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server failed", "error", err)
			}
		}()
	}

	menus := term.Menus{
		Term:    term.New(os.Stdin, os.Stdout),
		Auth:    app.auth,
		Rental:  app.rental,
		Fleet:   app.fleet,
		Policy:  app.policy,
		Reports: app.reports,
	}
	if err := menus.Run(ctx); err != nil {
		logger.Error("terminal session failed", "error", err)
		os.Exit(1)
	}
}

// repositories groups one repository per collection, whatever backend
// serves them.
type repositories struct {
	settings settings.Repository
	classes  catalog.ClassRepository
	vehicles catalog.VehicleRepository
	bookings booking.Repository
	users    user.Repository
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (repositories, func(), error) {
	noop := func() {}
	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return repositories{}, noop, err
		}
		if err := client.Ping(ctx); err != nil {
			return repositories{}, noop, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("mongo disconnect failed", "error", err)
			}
		}
		return repositories{
			settings: client.Settings(),
			classes:  client.Classes(),
			vehicles: client.Vehicles(),
			bookings: client.Bookings(),
			users:    client.Users(),
		}, cleanup, nil
	case config.StorageMemory:
		return repositories{
			settings: memory.NewSettingsRepository(),
			classes:  memory.NewClassRepository(),
			vehicles: memory.NewVehicleRepository(),
			bookings: memory.NewBookingRepository(),
			users:    memory.NewUserRepository(),
		}, noop, nil
	default:
		store, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			return repositories{}, noop, err
		}
		return repositories{
			settings: store.Settings(),
			classes:  store.Classes(),
			vehicles: store.Vehicles(),
			bookings: store.Bookings(),
			users:    store.Users(),
		}, noop, nil
	}
}

type application struct {
	auth    *auth.Service
	rental  *rental.Service
	fleet   *fleet.Service
	policy  *policy.Service
	reports *report.Service
}

func buildApplication(repos repositories, logger *slog.Logger) application {
	return application{
		auth: &auth.Service{Users: repos.users, Logger: logger},
		rental: &rental.Service{
			Settings: repos.settings,
			Classes:  repos.classes,
			Vehicles: repos.vehicles,
			Bookings: repos.bookings,
			Logger:   logger,
		},
		fleet: &fleet.Service{
			Classes:  repos.classes,
			Vehicles: repos.vehicles,
			Logger:   logger,
		},
		policy: &policy.Service{Settings: repos.settings, Logger: logger},
		reports: &report.Service{
			Classes:  repos.classes,
			Vehicles: repos.vehicles,
			Bookings: repos.bookings,
			Logger:   logger,
		},
	}
}
