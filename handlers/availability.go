package handlers

import (
	"net/http"

	"vetbuddy/models"
	"vetbuddy/services/availability"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves slot queries and clinic availability settings.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// GetSlotsHandler returns the day's slot grid for a clinic.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	day, err := h.Service.Resolve(c.Request.Context(), c.Param("clinicID"), c.Query("date"), c.Query("serviceId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// ValidateSlotHandler runs the booking policy against a date and time without booking.
func (h *AvailabilityHandler) ValidateSlotHandler(c *gin.Context) {
	decision, err := h.Service.Validate(c.Request.Context(), c.Param("clinicID"), c.Query("date"), c.Query("time"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

func (h *AvailabilityHandler) SuggestSlotsHandler(c *gin.Context) {
	suggestions, err := h.Service.Suggest(c.Request.Context(), c.Param("clinicID"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetAvailabilitySettingsHandler returns the authenticated clinic's settings with defaults applied.
func (h *AvailabilityHandler) GetAvailabilitySettingsHandler(c *gin.Context) {
	clinicID, ok := contextID(c, "clinicID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Clinic not authenticated", "unauthorized")
		return
	}

	settings, err := h.Service.GetSettings(c.Request.Context(), clinicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateAvailabilitySettingsHandler applies a partial update; absent fields are left alone.
func (h *AvailabilityHandler) UpdateAvailabilitySettingsHandler(c *gin.Context) {
	logger := getLogger(c)

	clinicID, ok := contextID(c, "clinicID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Clinic not authenticated", "unauthorized")
		return
	}

	var req models.AvailabilityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid availability update", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "invalid")
		return
	}

	settings, err := h.Service.UpdateSettings(c.Request.Context(), clinicID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Availability updated", zap.String("clinicID", clinicID))
	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated",
		"availability": settings,
	})
}
