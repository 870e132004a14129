package repository

import (
	"context"

	"gorm.io/gorm"

	"live-chat-app/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{Repository[entity.Message]{db: db}}
}

// FindByConversationID returns the full message history of a conversation in
// feed order: sent_at ascending, id breaking ties in insertion order.
func (repo MessageRepository) FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// Append writes one immutable message. The store assigns id and sent_at.
func (repo MessageRepository) Append(ctx context.Context, message *entity.Message) error {
	return repo.db.WithContext(ctx).Create(message).Error
}
