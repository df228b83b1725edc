package handlers

import (
	"net/http"

	"vetbuddy/models"
	"vetbuddy/services/booking"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler accepts online booking requests from pet owners.
type BookingHandler struct {
	Service booking.BookingService
}

func (h *BookingHandler) RequestBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	ownerID, ok := contextID(c, "ownerID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Owner not authenticated", "unauthorized")
		return
	}

	var req models.BookingRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "date and time are required", "invalid")
		return
	}

	b, err := h.Service.RequestBooking(c.Request.Context(), c.Param("clinicID"), ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}
