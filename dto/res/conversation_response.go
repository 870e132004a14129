package res

type ConversationResponse struct {
	ID             string   `json:"id"`
	Users          []string `json:"users"`
	RecipientEmail string   `json:"recipientEmail"`
}

// ConversationPageResponse is the server-rendered initial state of one
// conversation: the conversation itself, the resolved recipient, and the
// one-time ordered message snapshot the view is seeded with.
type ConversationPageResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Recipient    *UserResponse        `json:"recipient,omitempty"`
	Messages     []MessageResponse    `json:"messages"`
}
