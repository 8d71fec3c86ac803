// Package ginserver exposes the rental services over a small JSON API, a
// second frontend beside the terminal menus.
package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"fleetdesk/internal/infra/config"
	"fleetdesk/internal/infra/obs"
)

type CatalogHTTP interface {
	Classes(c *gin.Context)
	Vehicles(c *gin.Context)
}

type BookingHTTP interface {
	Create(c *gin.Context)
	History(c *gin.Context)
}

type ReportHTTP interface {
	Daily(c *gin.Context)
	Period(c *gin.Context)
}

type Handlers struct {
	Catalog CatalogHTTP
	Booking BookingHTTP
	Report  ReportHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := router.Group("/api/v1")
	if h.Catalog != nil {
		api.GET("/classes", h.Catalog.Classes)
		api.GET("/vehicles", h.Catalog.Vehicles)
	}
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
		api.GET("/bookings", h.Booking.History)
	}
	if h.Report != nil {
		api.GET("/reports/daily", h.Report.Daily)
		api.GET("/reports/period", h.Report.Period)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
