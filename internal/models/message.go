package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a single chat message inside a match. Messages are immutable
// once created.
type Message struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	MatchID   string    `gorm:"not null;index" json:"match_id"`
	SenderID  string    `gorm:"not null;index" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Match  *Match `gorm:"foreignKey:MatchID" json:"match,omitempty"`
	Sender *User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (m *Message) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
