package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match records that User1 liked User2. It becomes mutual when User2 likes
// back. The user1/user2 order is semantic (first liker is user1) and must not
// be normalized; PairKey carries the order-independent uniqueness constraint
// so that concurrent likes on the same pair cannot create duplicate rows.
type Match struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	User1ID   string    `gorm:"not null;index" json:"user1_id"`
	User2ID   string    `gorm:"not null;index" json:"user2_id"`
	PairKey   string    `gorm:"uniqueIndex;not null" json:"-"`
	IsMutual  bool      `gorm:"default:false" json:"is_mutual"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User1 *User `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2 *User `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
}

// PairKeyFor builds the order-independent key for a pair of user IDs.
func PairKeyFor(userID1, userID2 string) string {
	if userID1 > userID2 {
		userID1, userID2 = userID2, userID1
	}
	return userID1 + ":" + userID2
}

// BeforeCreate assigns the UUID and derived pair key.
func (m *Match) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.PairKey == "" {
		m.PairKey = PairKeyFor(m.User1ID, m.User2ID)
	}
	return nil
}

// OtherUserID returns the participant that is not userID, or "" when userID
// is not part of the match.
func (m *Match) OtherUserID(userID string) string {
	switch userID {
	case m.User1ID:
		return m.User2ID
	case m.User2ID:
		return m.User1ID
	default:
		return ""
	}
}

// Includes reports whether userID is one of the two participants.
func (m *Match) Includes(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}
