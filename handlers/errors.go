package handlers

import (
	"errors"
	"net/http"

	"vetbuddy/services/availability"
	"vetbuddy/services/booking"
	"vetbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Anything unrecognised is a 500
// with a generic message; the cause is only logged.
func respondError(c *gin.Context, err error) {
	var (
		validation *availability.ValidationError
		notFound   *availability.NotFoundError
		rejection  *availability.PolicyRejection
	)

	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, validation.Error(), "invalid")
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error(), "not-found")
	case errors.As(err, &rejection):
		utils.JSONError(c, http.StatusUnprocessableEntity, rejection.Message, rejection.Reason)
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "This slot has just been booked", "slot-taken")
	default:
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
	}
}

// contextID reads an identity placed on the context by the auth middleware.
func contextID(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
