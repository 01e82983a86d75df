package services

import (
	"errors"
	"strings"
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
)

type ReservationRequest struct {
	Name              string
	Email             string
	Phone             string
	Message           string
	PreferredDate     string
	PreferredTimeSlot string
}

type ReservationService struct {
	settings SettingsStore
	bookings BookingLedger
	loc      *time.Location
}

func NewReservationService(settings SettingsStore, bookings BookingLedger, loc *time.Location) *ReservationService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationService{settings: settings, bookings: bookings, loc: loc}
}

// Reserve validates the request against current availability and commits the
// booking. Preconditions are checked in a fixed order, each with its own
// rejection: system active (ErrSystemUnavailable), slot matches the current
// configuration (ErrInvalidSlot), required customer fields (ErrValidation),
// remaining capacity (ErrSlotFull). The capacity check and insert happen as
// one atomic unit inside the ledger.
func (s *ReservationService) Reserve(req ReservationRequest) (*models.Booking, error) {
	settings, err := s.settings.Get()
	if errors.Is(err, ErrNotConfigured) {
		return nil, ErrSystemUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !settings.IsActive {
		return nil, ErrSystemUnavailable
	}

	date, err := time.ParseInLocation(DateLayout, req.PreferredDate, s.loc)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if !settings.AllowsDay(date.Weekday().String()) {
		return nil, ErrInvalidSlot
	}
	slot, ok := settings.SlotByLabel(req.PreferredTimeSlot)
	if !ok {
		return nil, ErrInvalidSlot
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	switch {
	case name == "":
		return nil, validationError("name is required")
	case email == "":
		return nil, validationError("email is required")
	case phone == "":
		return nil, validationError("phone is required")
	}

	booking := &models.Booking{
		Name:              name,
		Email:             email,
		Phone:             phone,
		Message:           strings.TrimSpace(req.Message),
		PreferredDate:     date.Format(DateLayout),
		PreferredTimeSlot: slot.Label(),
		Status:            models.BookingPending,
	}
	if err := s.bookings.Reserve(booking, slot.MaxBookings); err != nil {
		return nil, err
	}
	return booking, nil
}
