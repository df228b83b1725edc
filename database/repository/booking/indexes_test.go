package bookingRepo

import (
	"testing"

	"vetbuddy/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestActiveSlotFilter(t *testing.T) {
	filter := activeSlotFilter()

	status, ok := filter["status"].(bson.M)
	if !assert.True(t, ok, "filter is keyed on status") {
		return
	}
	held, ok := status["$in"].([]string)
	if !assert.True(t, ok) {
		return
	}

	for _, s := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusNoShow} {
		assert.Contains(t, held, s)
	}
	for _, s := range models.InactiveStatuses {
		assert.NotContains(t, held, s)
	}
}
