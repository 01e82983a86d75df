package services

import (
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
)

// DateLayout is the calendar date format used everywhere a date crosses a
// package boundary. The whole system runs in a single configured timezone.
const DateLayout = "2006-01-02"

// SlotCandidate is a bookable (date, time slot) pair before capacity is
// taken into account.
type SlotCandidate struct {
	Date string
	Slot models.TimeSlot
}

// GenerateSlots expands the weekly availability configuration into concrete
// candidates over [startDate, startDate+horizonDays). Output is date-major,
// slots in configured order within each date. Pure: no state is retained and
// identical inputs always yield identical output. An inactive configuration
// yields no candidates.
func GenerateSlots(settings *models.BookingSettings, startDate time.Time, horizonDays int) []SlotCandidate {
	candidates := []SlotCandidate{}
	if settings == nil || !settings.IsActive {
		return candidates
	}

	for i := 0; i < horizonDays; i++ {
		day := startDate.AddDate(0, 0, i)
		if !settings.AllowsDay(day.Weekday().String()) {
			continue
		}
		date := day.Format(DateLayout)
		for _, slot := range settings.TimeSlots {
			candidates = append(candidates, SlotCandidate{Date: date, Slot: slot})
		}
	}
	return candidates
}
