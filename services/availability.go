package services

import (
	"errors"
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
)

// SettingsStore holds the single active booking configuration.
type SettingsStore interface {
	// Get returns the current settings, or ErrNotConfigured when no record exists.
	Get() (*models.BookingSettings, error)
	// Replace persists the complete desired state (full replace semantics).
	Replace(settings *models.BookingSettings) error
}

// ValidateSettings enforces the replace contract: a configuration must name
// at least one available day and one time slot. Store implementations call
// this before persisting.
func ValidateSettings(settings *models.BookingSettings) error {
	if len(settings.AvailableDays) == 0 {
		return validationError("available days must not be empty")
	}
	if len(settings.TimeSlots) == 0 {
		return validationError("time slots must not be empty")
	}
	return nil
}

// BookingLedger exposes live capacity reads and the atomic reservation commit.
type BookingLedger interface {
	// ActiveCount counts pending and confirmed bookings for the exact
	// (date, slot label) pair, reflecting the latest committed state.
	ActiveCount(date, slotLabel string) (int64, error)
	// Reserve inserts the booking iff the active count for its slot is below
	// maxBookings, atomically with respect to concurrent reservations on the
	// same pair. Returns ErrSlotFull when the capacity race is lost.
	Reserve(booking *models.Booking, maxBookings int) error
}

// AvailableSlot is the public availability view; derived, never persisted.
type AvailableSlot struct {
	Date           string `json:"date"`
	TimeSlot       string `json:"time_slot"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSpots int    `json:"available_spots"`
	IsAvailable    bool   `json:"is_available"`
}

type AvailabilityService struct {
	settings SettingsStore
	bookings BookingLedger
}

func NewAvailabilityService(settings SettingsStore, bookings BookingLedger) *AvailabilityService {
	return &AvailabilityService{settings: settings, bookings: bookings}
}

// Project returns the bookable slots over the horizon with remaining spots.
// Read-only, safe to call concurrently. Unconfigured or inactive settings
// produce an empty sequence, never an error the caller must recover from.
func (s *AvailabilityService) Project(startDate time.Time, horizonDays int) ([]AvailableSlot, error) {
	settings, err := s.settings.Get()
	if errors.Is(err, ErrNotConfigured) {
		return []AvailableSlot{}, nil
	}
	if err != nil {
		return nil, err
	}

	slots := []AvailableSlot{}
	for _, c := range GenerateSlots(settings, startDate, horizonDays) {
		count, err := s.bookings.ActiveCount(c.Date, c.Slot.Label())
		if err != nil {
			return nil, err
		}
		// Existing bookings are grandfathered when the admin shrinks a slot's
		// capacity, so the count can exceed maxBookings; clamp for display.
		spots := c.Slot.MaxBookings - int(count)
		if spots < 0 {
			spots = 0
		}
		slots = append(slots, AvailableSlot{
			Date:           c.Date,
			TimeSlot:       c.Slot.Label(),
			StartTime:      c.Slot.StartTime,
			EndTime:        c.Slot.EndTime,
			AvailableSpots: spots,
			IsAvailable:    spots > 0,
		})
	}
	return slots, nil
}
