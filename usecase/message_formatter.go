package usecase

import (
	"time"

	"live-chat-app/dto/res"
	"live-chat-app/entity"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// FormatMessage converts one stored message into its display shape. It is
// total: a record without a server-assigned timestamp yet formats with a nil
// SentAt and the caller renders a pending placeholder.
func FormatMessage(message entity.Message) res.MessageResponse {
	return res.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Text:           message.Text,
		User:           message.UserEmail,
		SentAt:         FormatTimestamp(message.SentAt),
	}
}

// FormatMessages preserves the input order exactly.
func FormatMessages(messages []entity.Message) []res.MessageResponse {
	formatted := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		formatted = append(formatted, FormatMessage(message))
	}
	return formatted
}

// FormatTimestamp renders a server-assigned timestamp for display, nil when
// the store has not assigned one.
func FormatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.Format(displayTimeLayout)
	return &formatted
}

// FormatUser converts a profile row into its display shape.
func FormatUser(user entity.User) res.UserResponse {
	return res.UserResponse{
		Email:    user.Email,
		PhotoURL: user.PhotoURL,
		LastSeen: FormatTimestamp(user.LastSeen),
	}
}
