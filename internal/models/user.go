// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered musician profile.
type User struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	Name            string    `gorm:"not null" json:"name"`
	Role            string    `json:"role"`
	Password        string    `gorm:"not null" json:"-"`
	ImageURL        string    `json:"image_url,omitempty"`
	AudioPreviewURL string    `json:"audio_preview_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
