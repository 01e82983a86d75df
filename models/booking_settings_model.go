package models

import "time"

const (
	MeetingTypeGoogleMeet = "google_meet"
	MeetingTypePhoneCall  = "phone_call"
)

// TimeSlot is one bookable window inside a day, times as "HH:MM" wall clock.
type TimeSlot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxBookings int    `json:"max_bookings"`
}

// Label is the slot identifier bookings snapshot at creation time. Editing a
// slot's hours produces a new label; bookings made under the old label keep it.
func (t TimeSlot) Label() string {
	return t.StartTime + " - " + t.EndTime
}

// BookingSettings is a singleton record; the admin replaces it wholesale.
type BookingSettings struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	AvailableDays []string   `gorm:"serializer:json;not null" json:"available_days"`
	TimeSlots     []TimeSlot `gorm:"serializer:json;not null" json:"time_slots"`
	MeetingType   string     `gorm:"size:20;not null;default:'google_meet'" json:"meeting_type"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BookingSettings) AllowsDay(weekday string) bool {
	for _, d := range s.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// SlotByLabel resolves a slot label against the current configuration.
func (s *BookingSettings) SlotByLabel(label string) (TimeSlot, bool) {
	for _, slot := range s.TimeSlots {
		if slot.Label() == label {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
