package models

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Category    string    `gorm:"size:100" json:"category"`
	Proficiency int       `gorm:"not null;default:0" json:"proficiency"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
