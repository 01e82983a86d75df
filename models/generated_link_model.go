package models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedLink is a short link to a generated mini-site or external page.
type GeneratedLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code      string    `gorm:"size:10;not null;unique" json:"code"`
	TargetURL string    `gorm:"size:500;not null" json:"target_url"`
	Label     string    `gorm:"size:255" json:"label"`
	Clicks    int64     `gorm:"not null;default:0" json:"clicks"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
