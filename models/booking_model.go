package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransitionTo enforces pending -> confirmed -> cancelled; cancelled is
// terminal. Hard deletion is allowed from any status and handled separately.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	default:
		return false
	}
}

// CountsAgainstCapacity reports whether a booking in this status holds a spot.
func (s BookingStatus) CountsAgainstCapacity() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Phone   string    `gorm:"size:50;not null" json:"phone"`
	Message string    `gorm:"type:text" json:"message,omitempty"`

	// Date as "2006-01-02"; slot as the label snapshot, e.g. "10:00 - 11:00".
	PreferredDate     string `gorm:"size:10;not null;index:idx_bookings_slot" json:"preferred_date"`
	PreferredTimeSlot string `gorm:"size:20;not null;index:idx_bookings_slot" json:"preferred_time_slot"`

	Status      BookingStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	MeetingLink *string       `gorm:"size:255" json:"meeting_link,omitempty"`
	AdminNotes  *string       `gorm:"type:text" json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
