package entity

// Conversation is a two-party chat. It is append-only: created once, never
// mutated or deleted afterwards.
type Conversation struct {
	BaseEntity

	Participants []ConversationParticipant `json:"participants" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE;"`
	Messages     []Message                 `json:"messages" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE;"`
}

type ConversationParticipant struct {
	ID             string `gorm:"primaryKey;type:varchar(255);default:gen_random_uuid()"`
	ConversationID string `gorm:"type:varchar(255);not null;index"`
	UserEmail      string `gorm:"type:varchar(100);not null;index"`

	Conversation Conversation `gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE;"`
}

// UserEmails returns the participant identifiers in stored order.
func (c Conversation) UserEmails() []string {
	emails := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		emails = append(emails, p.UserEmail)
	}
	return emails
}
