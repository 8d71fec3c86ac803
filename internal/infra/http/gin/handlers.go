package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"fleetdesk/internal/app/services/fleet"
	"fleetdesk/internal/app/services/rental"
	"fleetdesk/internal/app/services/report"
	"fleetdesk/internal/domain/booking"
	"fleetdesk/internal/domain/catalog"
	"fleetdesk/internal/domain/shared/interval"
)

type CatalogHandler struct {
	Fleet  *fleet.Service
	Rental *rental.Service
}

func (h CatalogHandler) Classes(c *gin.Context) {
	classes, err := h.Fleet.ListClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Vehicles lists the active fleet, the same view the client menu offers.
func (h CatalogHandler) Vehicles(c *gin.Context) {
	vehicles, err := h.Rental.ActiveVehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

type BookingHandler struct {
	Rental *rental.Service
}

type createBookingRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required"`
	Plate         string `json:"plate" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Rental.Create(c.Request.Context(), req.CustomerEmail, req.Plate, req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h BookingHandler) History(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	items, err := h.Rental.History(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type ReportHandler struct {
	Reports *report.Service
}

func (h ReportHandler) Daily(c *gin.Context) {
	r, err := h.Reports.DailyExtract(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h ReportHandler) Period(c *gin.Context) {
	stats, err := h.Reports.PeriodStatistics(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// statusFor maps the recoverable domain errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrVehicleNotFound), errors.Is(err, catalog.ErrClassNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrUnavailable):
		return http.StatusConflict
	case errors.Is(err, interval.ErrInvalidDateFormat),
		errors.Is(err, booking.ErrEndNotAfterStart),
		errors.Is(err, booking.ErrDurationExceedsMaximum):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var (
	_ CatalogHTTP = CatalogHandler{}
	_ BookingHTTP = BookingHandler{}
	_ ReportHTTP  = ReportHandler{}
)
