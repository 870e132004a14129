package repository

import (
	"context"

	"gorm.io/gorm"

	"live-chat-app/entity"
)

type ConversationRepository struct {
	Repository[entity.Conversation]
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{Repository[entity.Conversation]{db: db}}
}

// FindAllByUserEmail is the containment query behind the sidebar: every
// conversation whose participant set contains the given email.
func (repo ConversationRepository) FindAllByUserEmail(ctx context.Context, email string) ([]entity.Conversation, error) {
	var conversations []entity.Conversation

	err := repo.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Joins("JOIN t_conversation_participant cp ON cp.conversation_id = t_conversation.id").
		Where("cp.user_email = ?", email).
		Preload("Participants").
		Order("t_conversation.created_at ASC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}

	return conversations, nil
}

func (repo ConversationRepository) FindByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ExistsBetween reports whether a conversation already holds both emails in
// its participant set. The check is not transactional with creation; two
// concurrent creates can still race through it.
func (repo ConversationRepository) ExistsBetween(ctx context.Context, emailA, emailB string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Joins("JOIN t_conversation_participant cp1 ON cp1.conversation_id = t_conversation.id").
		Joins("JOIN t_conversation_participant cp2 ON cp2.conversation_id = t_conversation.id").
		Where("cp1.user_email = ? AND cp2.user_email = ?", emailA, emailB).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateWithParticipants appends the conversation and its two participant rows
// in one transaction. The store assigns the conversation id.
func (repo ConversationRepository) CreateWithParticipants(ctx context.Context, conversation *entity.Conversation, emails []string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}
		participants := make([]entity.ConversationParticipant, 0, len(emails))
		for _, email := range emails {
			participants = append(participants, entity.ConversationParticipant{
				ConversationID: conversation.ID,
				UserEmail:      email,
			})
		}
		if err := tx.Create(&participants).Error; err != nil {
			return err
		}
		conversation.Participants = participants
		return nil
	})
}
