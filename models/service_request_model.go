package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id,omitempty"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Status    string     `gorm:"size:20;not null;default:'new'" json:"status"`

	Service *Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
