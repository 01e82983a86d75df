package database

import (
	"errors"

	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The booking configuration is a singleton row; replace overwrites it in place.
const settingsID = 1

type GormSettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

func (s *GormSettingsStore) Get() (*models.BookingSettings, error) {
	var settings models.BookingSettings
	if err := s.db.First(&settings, settingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotConfigured
		}
		return nil, err
	}
	return &settings, nil
}

func (s *GormSettingsStore) Replace(settings *models.BookingSettings) error {
	if err := services.ValidateSettings(settings); err != nil {
		return err
	}
	settings.ID = settingsID
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
}
