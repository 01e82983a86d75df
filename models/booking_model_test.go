package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusCountsAgainstCapacity(t *testing.T) {
	assert.True(t, BookingPending.CountsAgainstCapacity())
	assert.True(t, BookingConfirmed.CountsAgainstCapacity())
	assert.False(t, BookingCancelled.CountsAgainstCapacity())
}

func TestTimeSlotLabel(t *testing.T) {
	slot := TimeSlot{StartTime: "10:00", EndTime: "11:00", MaxBookings: 2}
	assert.Equal(t, "10:00 - 11:00", slot.Label())
}

func TestSettingsSlotByLabel(t *testing.T) {
	settings := BookingSettings{
		TimeSlots: []TimeSlot{
			{StartTime: "09:00", EndTime: "10:00", MaxBookings: 1},
			{StartTime: "10:00", EndTime: "11:00", MaxBookings: 2},
		},
	}

	slot, ok := settings.SlotByLabel("10:00 - 11:00")
	assert.True(t, ok)
	assert.Equal(t, 2, slot.MaxBookings)

	_, ok = settings.SlotByLabel("11:00 - 12:00")
	assert.False(t, ok)
}

func TestSettingsAllowsDay(t *testing.T) {
	settings := BookingSettings{AvailableDays: []string{"Monday", "Friday"}}
	assert.True(t, settings.AllowsDay("Monday"))
	assert.False(t, settings.AllowsDay("Sunday"))
}
