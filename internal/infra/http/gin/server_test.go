package ginserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/app/services/fleet"
	"fleetdesk/internal/app/services/rental"
	"fleetdesk/internal/app/services/report"
	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/settings"
	"fleetdesk/internal/infra/config"
	ginserver "fleetdesk/internal/infra/http/gin"
	"fleetdesk/internal/infra/obs"
	"fleetdesk/internal/infra/storage/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	settingsRepo := memory.NewSettingsRepository()
	require.NoError(t, settingsRepo.SaveAll(ctx, []settings.Settings{{MaxRentalDays: 7}}))
	classRepo := memory.NewClassRepository()
	require.NoError(t, classRepo.SaveAll(ctx, []catalog.VehicleClass{
		{ID: 1, Name: "Economy", Description: "Small", DailyPrice: 100},
	}))
	vehicleRepo := memory.NewVehicleRepository()
	require.NoError(t, vehicleRepo.SaveAll(ctx, []catalog.Vehicle{
		{Plate: "AA00AA", Brand: "Fiat", Model: "Panda", ClassID: 1, Status: catalog.StatusActive},
	}))
	bookingRepo := memory.NewBookingRepository()

	rentalSvc := &rental.Service{Settings: settingsRepo, Classes: classRepo, Vehicles: vehicleRepo, Bookings: bookingRepo}
	fleetSvc := &fleet.Service{Classes: classRepo, Vehicles: vehicleRepo}
	reportSvc := &report.Service{Classes: classRepo, Vehicles: vehicleRepo, Bookings: bookingRepo}

	server := ginserver.NewServer(config.Config{Env: "test", HTTPAddr: ":0"}, obs.Middleware{}, ginserver.Handlers{
		Catalog: ginserver.CatalogHandler{Fleet: fleetSvc, Rental: rentalSvc},
		Booking: ginserver.BookingHandler{Rental: rentalSvc},
		Report:  ginserver.ReportHandler{Reports: reportSvc},
	})
	return server.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/bookings",
		`{"customer_email":"ana@example.com","plate":"AA00AA","start_date":"2024-02-01","end_date":"2024-02-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created booking.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "AA00AA", created.Plate)
	assert.Equal(t, 4, created.DurationDays)

	// The same period conflicts now.
	rec = doJSON(t, h, http.MethodPost, "/api/v1/bookings",
		`{"customer_email":"rui@example.com","plate":"AA00AA","start_date":"2024-02-03","end_date":"2024-02-06"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/bookings",
		`{"customer_email":"rui@example.com","plate":"ZZ99ZZ","start_date":"2024-02-03","end_date":"2024-02-06"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/bookings",
		`{"customer_email":"rui@example.com","plate":"AA00AA","start_date":"03/02/2024","end_date":"2024-02-06"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogAndReportEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/vehicles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var vehicles []catalog.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 1)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/bookings",
		`{"customer_email":"ana@example.com","plate":"AA00AA","start_date":"2024-02-01","end_date":"2024-02-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/reports/daily?date=2024-02-02", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var daily report.DailyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &daily))
	assert.Equal(t, 1, daily.Count)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/reports/period?from=2024-02-01&to=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats report.PeriodStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 4, stats.RentedDays)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/reports/period?from=2024-03-01&to=2024-02-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/bookings?email=ana@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []booking.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history, 1)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/bookings", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
