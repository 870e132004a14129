package usecase

import (
	"context"

	"live-chat-app/dto/res"
	"live-chat-app/security"
)

type MessageUsecase interface {
	GetMessages(ctx context.Context, conversationID string) ([]res.MessageResponse, error)
	SendMessage(ctx context.Context, sender security.CurrentUser, conversationID, text string) error
}
