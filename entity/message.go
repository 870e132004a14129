package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is immutable once written. SentAt is assigned server-side at
// write-acceptance time and is the sole ordering key, id breaking ties.
type Message struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	ConversationID string    `json:"conversation_id" gorm:"type:varchar(255);not null;index"`
	Text           string    `json:"text" gorm:"type:TEXT"`
	UserEmail      string    `json:"user" gorm:"type:varchar(100);not null"`
	SentAt         time.Time `json:"sent_at" gorm:"autoCreateTime"`

	Conversation Conversation `json:"-" gorm:"foreignKey:ConversationID;references:ID"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
