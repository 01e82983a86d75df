package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a portfolio offering shown on the public site.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PriceHint   *string   `gorm:"size:100" json:"price_hint,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
