package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"urbanauto/services/booking"
)

func bookingStatus(code booking.ErrorCode) int {
	switch code {
	case booking.CodeNotLoggedIn:
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func writeBookingError(c *gin.Context, err error) {
	var bErr *booking.Error
	if errors.As(err, &bErr) {
		c.JSON(bookingStatus(bErr.Code), gin.H{"error": bErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ListBookingsHandler returns the cached snapshot, newest first. Pass
// ?refresh=true to re-sync from the remote store first.
func ListBookingsHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if c.Query("refresh") == "true" {
			if err := svc.Refresh(c.Request.Context()); err != nil {
				logger.Error("Booking refresh failed", zap.Error(err))
				writeBookingError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"bookings": svc.Bookings()})
	}
}

// CreateBookingHandler runs the booking form through validation and
// creates the booking on success. Validation violations come back as a
// per-field error map with a 422.
func CreateBookingHandler(controller *booking.FormController) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var form booking.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			logger.Error("Invalid booking request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		fieldErrs, created, err := controller.Submit(c.Request.Context(), &form)
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		if err != nil {
			logger.Error("Booking creation failed", zap.Error(err))
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// CancelBookingHandler deletes the caller's booking by id.
func CancelBookingHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		id := c.Param("id")
		if err := svc.CancelBooking(c.Request.Context(), id); err != nil {
			logger.Error("Booking cancellation failed", zap.String("bookingId", id), zap.Error(err))
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// RescheduleBookingHandler rewrites a booking's preferred date and time.
func RescheduleBookingHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		id := c.Param("id")
		var req struct {
			PreferredDateTime string `json:"preferredDateTime" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid reschedule request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.RescheduleBooking(c.Request.Context(), id, req.PreferredDateTime); err != nil {
			logger.Error("Booking reschedule failed", zap.String("bookingId", id), zap.Error(err))
			writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
