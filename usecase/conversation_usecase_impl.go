package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"live-chat-app/dto/res"
	"live-chat-app/entity"
	"live-chat-app/subscription"
)

type ConversationUsecaseImpl struct {
	Conversations ConversationStore
	Messages      MessageStore
	Users         UserStore
	Validate      *validator.Validate
	Hub           *subscription.Hub
	*logrus.Logger
}

func NewConversationUsecase(conversations ConversationStore, messages MessageStore, users UserStore, validate *validator.Validate, hub *subscription.Hub, logger *logrus.Logger) ConversationUsecase {
	return &ConversationUsecaseImpl{
		Conversations: conversations,
		Messages:      messages,
		Users:         users,
		Validate:      validate,
		Hub:           hub,
		Logger:        logger,
	}
}

func (uc *ConversationUsecaseImpl) ListConversations(ctx context.Context, currentEmail string) ([]res.ConversationResponse, error) {
	conversations, err := uc.Conversations.FindAllByUserEmail(ctx, currentEmail)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to list conversations")
		return nil, err
	}

	responses := make([]res.ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		responses = append(responses, toConversationResponse(conversation, currentEmail))
	}
	return responses, nil
}

// CreateConversation appends a new two-party conversation unless validation
// blocks it. The duplicate check runs against the current conversation set
// and is not transactional with the append; two concurrent creates for the
// same pair can both pass it.
func (uc *ConversationUsecaseImpl) CreateConversation(ctx context.Context, currentEmail, recipientEmail string) (*res.ConversationResponse, error) {
	if err := uc.Validate.Var(recipientEmail, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if recipientEmail == currentEmail {
		return nil, ErrSelfInvite
	}

	exists, err := uc.Conversations.ExistsBetween(ctx, currentEmail, recipientEmail)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to check for existing conversation")
		return nil, err
	}
	if exists {
		return nil, ErrConversationExists
	}

	conversation := &entity.Conversation{}
	if err := uc.Conversations.CreateWithParticipants(ctx, conversation, []string{currentEmail, recipientEmail}); err != nil {
		uc.Logger.WithError(err).Error("Failed to create conversation")
		return nil, err
	}

	uc.Hub.Publish(
		subscription.ConversationsTopic(currentEmail),
		subscription.ConversationsTopic(recipientEmail),
	)

	response := toConversationResponse(*conversation, currentEmail)
	return &response, nil
}

// GetConversationPage performs the one-time initial fetch behind the
// conversation page: the conversation, the resolved recipient profile (nil
// until the recipient has sent), and the ordered message snapshot.
func (uc *ConversationUsecaseImpl) GetConversationPage(ctx context.Context, currentEmail, conversationID string) (res.ConversationPageResponse, error) {
	conversation, err := uc.Conversations.FindByID(ctx, conversationID)
	if err != nil {
		return res.ConversationPageResponse{}, fmt.Errorf("failed to resolve conversation: %w", err)
	}

	messages, err := uc.Messages.FindByConversationID(ctx, conversationID)
	if err != nil {
		return res.ConversationPageResponse{}, fmt.Errorf("failed to fetch messages: %w", err)
	}

	recipientEmail := RecipientEmail(conversation.UserEmails(), currentEmail)

	var recipient *res.UserResponse
	profile, err := uc.Users.FindByEmail(ctx, recipientEmail)
	if err != nil {
		uc.Logger.WithError(err).Warn("Failed to fetch recipient profile")
	} else if profile != nil {
		formatted := FormatUser(*profile)
		recipient = &formatted
	}

	return res.ConversationPageResponse{
		Conversation: toConversationResponse(*conversation, currentEmail),
		Recipient:    recipient,
		Messages:     FormatMessages(messages),
	}, nil
}

func toConversationResponse(conversation entity.Conversation, currentEmail string) res.ConversationResponse {
	users := conversation.UserEmails()
	return res.ConversationResponse{
		ID:             conversation.ID,
		Users:          users,
		RecipientEmail: RecipientEmail(users, currentEmail),
	}
}
