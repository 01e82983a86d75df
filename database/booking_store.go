package database

import (
	"errors"

	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormBookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

var activeStatuses = []models.BookingStatus{models.BookingPending, models.BookingConfirmed}

func (s *GormBookingStore) ActiveCount(date, slotLabel string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("preferred_date = ? AND preferred_time_slot = ? AND status IN ?", date, slotLabel, activeStatuses).
		Count(&count).Error
	return count, err
}

// Reserve commits the capacity check and insert as one transaction. The
// settings singleton row is locked FOR UPDATE so concurrent reservations
// serialize across processes; the active count is re-verified under the lock
// before the insert, so a slot with one remaining spot admits exactly one of
// two racing requests.
func (s *GormBookingStore) Reserve(booking *models.Booking, maxBookings int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var settings models.BookingSettings
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&settings, settingsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrSystemUnavailable
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("preferred_date = ? AND preferred_time_slot = ? AND status IN ?",
				booking.PreferredDate, booking.PreferredTimeSlot, activeStatuses).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(maxBookings) {
			return services.ErrSlotFull
		}

		return tx.Create(booking).Error
	})
}
