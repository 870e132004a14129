package usecase

import "errors"

// Validation sentinels. These block the attempted action silently: handlers
// log them and return without a user-facing error payload.
var (
	ErrInvalidEmail       = errors.New("recipient email failed syntax check")
	ErrSelfInvite         = errors.New("recipient email is the current user")
	ErrConversationExists = errors.New("conversation with recipient already exists")
	ErrEmptyMessage       = errors.New("message text is empty")
)
