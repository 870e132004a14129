package usecase

import (
	"context"
	"time"

	"live-chat-app/entity"
)

// Store ports consumed by the usecases, implemented by the repository layer.

type ConversationStore interface {
	FindAllByUserEmail(ctx context.Context, email string) ([]entity.Conversation, error)
	FindByID(ctx context.Context, id string) (*entity.Conversation, error)
	ExistsBetween(ctx context.Context, emailA, emailB string) (bool, error)
	CreateWithParticipants(ctx context.Context, conversation *entity.Conversation, emails []string) error
}

type MessageStore interface {
	FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error)
	Append(ctx context.Context, message *entity.Message) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	TouchLastSeen(ctx context.Context, email, photoURL string, at time.Time) error
}

type AccountStore interface {
	Save(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (entity.Account, error)
}
