package req

// CreateConversationRequest carries the candidate recipient typed into the
// new-conversation dialog. Syntax is checked in the usecase, not by tags, so
// a bad address blocks silently instead of returning a validation error.
type CreateConversationRequest struct {
	RecipientEmail string `json:"recipientEmail"`
}
