package res

// MessageResponse is the display-ready shape of a stored message. SentAt is a
// locale-formatted string, or nil when the record has not been timestamped by
// the server yet; the client renders a pending placeholder in that case.
type MessageResponse struct {
	ID             string  `json:"id"`
	ConversationID string  `json:"conversation_id"`
	Text           string  `json:"text"`
	User           string  `json:"user"`
	SentAt         *string `json:"sent_at"`
}
