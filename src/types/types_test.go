package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BOOKING_PENDING.CanTransition(BOOKING_CONFIRMED))
	assert.True(t, BOOKING_CONFIRMED.CanTransition(BOOKING_ACTIVE))
	assert.True(t, BOOKING_ACTIVE.CanTransition(BOOKING_COMPLETED))

	assert.True(t, BOOKING_PENDING.CanTransition(BOOKING_CANCELED))
	assert.True(t, BOOKING_CONFIRMED.CanTransition(BOOKING_CANCELED))
	assert.True(t, BOOKING_ACTIVE.CanTransition(BOOKING_CANCELED))

	// Terminal states stay terminal.
	assert.False(t, BOOKING_COMPLETED.CanTransition(BOOKING_ACTIVE))
	assert.False(t, BOOKING_COMPLETED.CanTransition(BOOKING_CANCELED))
	assert.False(t, BOOKING_CANCELED.CanTransition(BOOKING_CONFIRMED))

	// No skipping forward.
	assert.False(t, BOOKING_CONFIRMED.CanTransition(BOOKING_COMPLETED))
	assert.False(t, BOOKING_PENDING.CanTransition(BOOKING_ACTIVE))
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BOOKING_CONFIRMED.Valid())
	assert.False(t, BookingStatus("shipped").Valid())
}
