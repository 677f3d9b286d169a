package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CANCELLABLE_STATUSES", "")
	t.Setenv("RATING_MAX_ATTEMPTS", "")

	s := Load()

	assert.Equal(t, ":8083", s.HTTPAddr)
	assert.Equal(t, []string{"pending", "confirmed"}, s.CancellableStatuses)
	assert.Equal(t, 5, s.RatingMaxAttempts)
	assert.Equal(t, 30*24*time.Hour, s.RatingMarkerTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CANCELLABLE_STATUSES", "pending, confirmed ,ready")
	t.Setenv("RATING_MAX_ATTEMPTS", "nope")
	t.Setenv("RATING_MARKER_TTL", "48h")
	t.Setenv("TAX_RATE", "0.0825")

	s := Load()

	assert.Equal(t, []string{"pending", "confirmed", "ready"}, s.CancellableStatuses)
	assert.Equal(t, 5, s.RatingMaxAttempts)
	assert.Equal(t, 48*time.Hour, s.RatingMarkerTTL)
	assert.Equal(t, "0.0825", s.TaxRate)
}
