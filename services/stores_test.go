package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kamaubrian/portfolio-backend/models"
)

// In-memory stores used to exercise the engine without a database. The
// ledger serializes Reserve with a mutex, mirroring the transactional
// recount-then-insert of the gorm implementation.

type memSettingsStore struct {
	mu       sync.Mutex
	settings *models.BookingSettings
}

func (s *memSettingsStore) Get() (*models.BookingSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil, ErrNotConfigured
	}
	current := *s.settings
	return &current, nil
}

func (s *memSettingsStore) Replace(settings *models.BookingSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ValidateSettings(settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

type memBookingLedger struct {
	mu       sync.Mutex
	bookings []*models.Booking
}

func (l *memBookingLedger) ActiveCount(date, slotLabel string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countLocked(date, slotLabel), nil
}

func (l *memBookingLedger) countLocked(date, slotLabel string) int64 {
	var n int64
	for _, b := range l.bookings {
		if b.PreferredDate == date && b.PreferredTimeSlot == slotLabel && b.Status.CountsAgainstCapacity() {
			n++
		}
	}
	return n
}

func (l *memBookingLedger) Reserve(booking *models.Booking, maxBookings int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.countLocked(booking.PreferredDate, booking.PreferredTimeSlot) >= int64(maxBookings) {
		return ErrSlotFull
	}
	booking.ID = uuid.New()
	l.bookings = append(l.bookings, booking)
	return nil
}

func (l *memBookingLedger) cancel(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.bookings {
		if b.ID == id {
			b.Status = models.BookingCancelled
		}
	}
}

func (l *memBookingLedger) remove(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.bookings[:0]
	for _, b := range l.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	l.bookings = kept
}

func mondaySettings(maxBookings int) *models.BookingSettings {
	return &models.BookingSettings{
		AvailableDays: []string{"Monday"},
		TimeSlots: []models.TimeSlot{
			{StartTime: "10:00", EndTime: "11:00", MaxBookings: maxBookings},
		},
		MeetingType: models.MeetingTypeGoogleMeet,
		IsActive:    true,
	}
}
