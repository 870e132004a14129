package res

import "live-chat-app/enum"

// MessageFeedFrame is one websocket push of an entire rendered message list.
// Every frame carries the full current result set, never a delta, and names
// the source that produced it. LatestID is the auto-scroll anchor.
type MessageFeedFrame struct {
	ConversationID string            `json:"conversationId"`
	Source         enum.FeedSource   `json:"source"`
	Messages       []MessageResponse `json:"messages"`
	LatestID       string            `json:"latestId,omitempty"`
}

// ConversationFeedFrame is one websocket push of the sidebar's full
// conversation list for the current user.
type ConversationFeedFrame struct {
	Conversations []ConversationResponse `json:"conversations"`
}

// RecipientFeedFrame pushes the recipient's profile, or found=false while the
// recipient has never sent a message and therefore has no profile row yet.
type RecipientFeedFrame struct {
	Found     bool          `json:"found"`
	Recipient *UserResponse `json:"recipient,omitempty"`
}
