package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexbook/config"
	"lexbook/models"
	"lexbook/services/booking"
	"lexbook/utils"
)

// BookingHandler exposes the booking engine over HTTP. It contains no
// scheduling logic; it translates requests and maps the engine's error
// taxonomy onto status codes.
type BookingHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

func NewBookingHandler(engine booking.BookingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// CheckAvailability handles GET /api/booking/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	query := models.AvailabilityQuery{
		ServiceID:   c.Query("serviceId"),
		Date:        c.Query("date"),
		IsEmergency: c.Query("emergency") == "true",
	}
	if raw := c.Query("duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		query.DurationMinutes = minutes
	}

	resp, err := h.Engine.CheckAvailability(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err, query.IsEmergency)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /api/booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Engine.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, false)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CreateEmergencyBooking handles POST /api/booking/emergency. Failures on
// this path always carry the direct emergency contact number: a caller in
// crisis must never be left with a bare error.
func (h *BookingHandler) CreateEmergencyBooking(c *gin.Context) {
	var req models.EmergencyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "invalid input",
			"details":          err.Error(),
			"emergencyContact": config.AppConfig.EmergencyContactPhone,
		})
		return
	}

	b, err := h.Engine.CreateEmergencyBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, true)
		return
	}
	c.JSON(http.StatusCreated, b)
}

type statusUpdateInput struct {
	NewStatus models.BookingStatus `json:"newStatus" binding:"required"`
	Reason    string               `json:"reason"`
}

// UpdateBookingStatus handles PUT /api/booking/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Engine.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.NewStatus, input.Reason)
	if err != nil {
		h.respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBooking handles GET /api/booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Engine.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingStats handles GET /api/booking/stats.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	start, err := models.ParseDate(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date", "start must be YYYY-MM-DD")
		return
	}
	end, err := models.ParseDate(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end date", "end must be YYYY-MM-DD")
		return
	}

	// End date is inclusive on the wire.
	stats, err := h.Engine.GetBookingStats(c.Request.Context(), start, end.Add(24*time.Hour))
	if err != nil {
		h.respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BookingHandler) respondError(c *gin.Context, err error, emergencyPath bool) {
	body := gin.H{}
	status := http.StatusInternalServerError

	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
		body["error"] = booking.CodeValidationFailed
		body["fields"] = verr.Fields
	} else {
		switch booking.ErrorCode(err) {
		case booking.CodeUnknownService, booking.CodeUnknownBooking:
			status = http.StatusNotFound
		case booking.CodeSlotNoLongerAvailable, booking.CodeInvalidTransition:
			status = http.StatusConflict
		case booking.CodeEmergencyPolicyViolation:
			status = http.StatusUnprocessableEntity
		}
		if code := booking.ErrorCode(err); code != "" {
			body["error"] = code
			body["details"] = err.Error()
		} else {
			body["error"] = "internal"
			body["details"] = "an unexpected error occurred"
			h.Logger.Error("booking handler failure", zap.Error(err))
		}
	}

	if emergencyPath {
		body["emergencyContact"] = config.AppConfig.EmergencyContactPhone
	}
	c.JSON(status, body)
}
