package kernel_test

import (
	"testing"
	"time"

	"dinesmart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	t.Run("should return current UTC time", func(t *testing.T) {
		before := time.Now().UTC()
		now := kernel.NewSystemClock().Now()
		after := time.Now().UTC()

		assert.Equal(t, time.UTC, now.Location())
		assert.False(t, now.Before(before))
		assert.False(t, now.After(after))
	})
}

func TestFixedClock(t *testing.T) {
	t.Run("should always return the same instant", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
		clock := kernel.NewFixedClock(at)

		assert.Equal(t, at, clock.Now())
		assert.Equal(t, at, clock.Now())
	})
}

func TestClockFunc(t *testing.T) {
	calls := 0
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var clock kernel.Clock = kernel.ClockFunc(func() time.Time {
		calls++
		return at.Add(time.Duration(calls) * time.Minute)
	})

	assert.Equal(t, at.Add(time.Minute), clock.Now())
	assert.Equal(t, at.Add(2*time.Minute), clock.Now())
}
