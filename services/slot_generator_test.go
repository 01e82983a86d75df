package services

import (
	"testing"
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateSlotsOnlyEmitsConfiguredWeekdays(t *testing.T) {
	tests := []struct {
		name string
		days []string
	}{
		{"single day", []string{"Monday"}},
		{"weekend", []string{"Saturday", "Sunday"}},
		{"weekdays", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
		{"all days", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &models.BookingSettings{
				AvailableDays: tt.days,
				TimeSlots:     []models.TimeSlot{{StartTime: "09:00", EndTime: "10:00", MaxBookings: 1}},
				IsActive:      true,
			}

			allowed := map[string]bool{}
			for _, d := range tt.days {
				allowed[d] = true
			}

			for _, c := range GenerateSlots(settings, monday, 28) {
				day, err := time.Parse(DateLayout, c.Date)
				require.NoError(t, err)
				assert.True(t, allowed[day.Weekday().String()], "unexpected weekday for %s", c.Date)
			}

			// 28 days cover each weekday exactly four times.
			got := GenerateSlots(settings, monday, 28)
			assert.Len(t, got, 4*len(tt.days))
		})
	}
}

func TestGenerateSlotsOrderIsDateMajorThenConfigured(t *testing.T) {
	settings := &models.BookingSettings{
		AvailableDays: []string{"Monday", "Tuesday"},
		TimeSlots: []models.TimeSlot{
			{StartTime: "14:00", EndTime: "15:00", MaxBookings: 1},
			{StartTime: "09:00", EndTime: "10:00", MaxBookings: 1},
		},
		IsActive: true,
	}

	got := GenerateSlots(settings, monday, 8)
	require.Len(t, got, 4)

	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "14:00", got[0].Slot.StartTime)
	assert.Equal(t, "2024-01-01", got[1].Date)
	assert.Equal(t, "09:00", got[1].Slot.StartTime)
	assert.Equal(t, "2024-01-02", got[2].Date)
	assert.Equal(t, "14:00", got[2].Slot.StartTime)
	assert.Equal(t, "2024-01-02", got[3].Date)
	assert.Equal(t, "09:00", got[3].Slot.StartTime)
}

func TestGenerateSlotsStartDateInclusive(t *testing.T) {
	got := GenerateSlots(mondaySettings(2), monday, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date)
}

func TestGenerateSlotsSingleMondayInWeek(t *testing.T) {
	got := GenerateSlots(mondaySettings(2), monday, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "10:00 - 11:00", got[0].Slot.Label())
}

func TestGenerateSlotsEmptyCases(t *testing.T) {
	inactive := mondaySettings(2)
	inactive.IsActive = false

	assert.Empty(t, GenerateSlots(inactive, monday, 30))
	assert.Empty(t, GenerateSlots(nil, monday, 30))
	assert.Empty(t, GenerateSlots(mondaySettings(2), monday, 0))
}

func TestGenerateSlotsIsDeterministic(t *testing.T) {
	settings := mondaySettings(3)
	first := GenerateSlots(settings, monday, 60)
	second := GenerateSlots(settings, monday, 60)
	assert.Equal(t, first, second)
}
