package services

import (
	"testing"

	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsReplaceValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings *models.BookingSettings
		wantErr  bool
	}{
		{
			name: "no available days is rejected",
			settings: &models.BookingSettings{
				AvailableDays: []string{},
				TimeSlots: []models.TimeSlot{
					{StartTime: "10:00", EndTime: "11:00", MaxBookings: 2},
				},
				MeetingType: models.MeetingTypeGoogleMeet,
				IsActive:    true,
			},
			wantErr: true,
		},
		{
			name: "no time slots is rejected",
			settings: &models.BookingSettings{
				AvailableDays: []string{"Monday"},
				TimeSlots:     []models.TimeSlot{},
				MeetingType:   models.MeetingTypeGoogleMeet,
				IsActive:      true,
			},
			wantErr: true,
		},
		{
			name:     "complete configuration is accepted",
			settings: mondaySettings(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memSettingsStore{}
			err := store.Replace(tt.settings)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				_, getErr := store.Get()
				assert.ErrorIs(t, getErr, ErrNotConfigured, "rejected settings must not be stored")
				return
			}
			require.NoError(t, err)
			got, err := store.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.settings.AvailableDays, got.AvailableDays)
			assert.Equal(t, tt.settings.TimeSlots, got.TimeSlots)
		})
	}
}

func TestSettingsReplaceOverwritesPreviousState(t *testing.T) {
	store := &memSettingsStore{}
	require.NoError(t, store.Replace(mondaySettings(2)))

	replacement := &models.BookingSettings{
		AvailableDays: []string{"Tuesday", "Wednesday"},
		TimeSlots: []models.TimeSlot{
			{StartTime: "14:00", EndTime: "15:00", MaxBookings: 1},
		},
		MeetingType: models.MeetingTypePhoneCall,
		IsActive:    true,
	}
	require.NoError(t, store.Replace(replacement))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tuesday", "Wednesday"}, got.AvailableDays)
	assert.Equal(t, models.MeetingTypePhoneCall, got.MeetingType)

	// A rejected replace leaves the previous configuration untouched.
	err = store.Replace(&models.BookingSettings{AvailableDays: []string{"Friday"}})
	assert.ErrorIs(t, err, ErrValidation)
	got, err = store.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Tuesday", "Wednesday"}, got.AvailableDays)
}
