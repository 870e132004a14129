package entity

import "time"

// User is the chat profile keyed by the externally issued email identity.
// Rows are created lazily: the first message a user sends upserts their row.
type User struct {
	Email    string    `json:"email" gorm:"primaryKey;type:varchar(100)"`
	PhotoURL string    `json:"photoURL,omitempty" gorm:"type:text"`
	LastSeen time.Time `json:"lastSeen"`

	Messages []Message `json:"-" gorm:"foreignKey:UserEmail;references:Email"`
}
