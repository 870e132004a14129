package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"live-chat-app/dto/res"
	"live-chat-app/entity"
	"live-chat-app/security"
	"live-chat-app/subscription"
)

type messageUsecase struct {
	messages MessageStore
	users    UserStore
	hub      *subscription.Hub
	log      *logrus.Logger
}

func NewMessageUsecase(messages MessageStore, users UserStore, hub *subscription.Hub, log *logrus.Logger) MessageUsecase {
	return &messageUsecase{messages: messages, users: users, hub: hub, log: log}
}

// GetMessages is the ordered full-history query shared by the one-time
// snapshot fetch and every live re-fetch, so both sources see identical
// predicate and order.
func (uc *messageUsecase) GetMessages(ctx context.Context, conversationID string) ([]res.MessageResponse, error) {
	messages, err := uc.messages.FindByConversationID(ctx, conversationID)
	if err != nil {
		uc.log.WithError(err).Error("Failed to get messages for conversation")
		return nil, err
	}
	return FormatMessages(messages), nil
}

// SendMessage performs the two independent writes of a send: merge-update the
// sender's lastSeen to the current server time, then append the message with
// a server-assigned timestamp. The sent message is not echoed back; it
// reaches the view only through the live subscription after publish. A failed
// lastSeen update is logged and does not block the append.
func (uc *messageUsecase) SendMessage(ctx context.Context, sender security.CurrentUser, conversationID, text string) error {
	if text == "" {
		return ErrEmptyMessage
	}

	if err := uc.users.TouchLastSeen(ctx, sender.Email, sender.PhotoURL, time.Now()); err != nil {
		uc.log.WithError(err).Error("Failed to update sender lastSeen")
	} else {
		uc.hub.Publish(subscription.UserTopic(sender.Email))
	}

	message := &entity.Message{
		ConversationID: conversationID,
		Text:           text,
		UserEmail:      sender.Email,
	}
	if err := uc.messages.Append(ctx, message); err != nil {
		uc.log.WithError(err).Error("Failed to append message")
		return fmt.Errorf("failed to append message: %w", err)
	}

	uc.hub.Publish(subscription.MessagesTopic(conversationID))
	return nil
}
