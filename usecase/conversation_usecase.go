package usecase

import (
	"context"

	"live-chat-app/dto/res"
)

type ConversationUsecase interface {
	ListConversations(ctx context.Context, currentEmail string) ([]res.ConversationResponse, error)
	CreateConversation(ctx context.Context, currentEmail, recipientEmail string) (*res.ConversationResponse, error)
	GetConversationPage(ctx context.Context, currentEmail, conversationID string) (res.ConversationPageResponse, error)
}
