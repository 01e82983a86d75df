package models

import (
	"time"

	"github.com/google/uuid"
)

type StorageItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Label    string    `gorm:"size:255;not null" json:"label"`
	Location string    `gorm:"size:255" json:"location"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
	Notes    string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
