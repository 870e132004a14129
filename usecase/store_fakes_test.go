package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"live-chat-app/entity"
)

// In-memory store fakes mirroring the repository contracts.

type fakeConversationStore struct {
	mu            sync.Mutex
	conversations []entity.Conversation
	createdCount  int
}

func (f *fakeConversationStore) seed(id string, emails ...string) {
	conversation := entity.Conversation{}
	conversation.ID = id
	for _, email := range emails {
		conversation.Participants = append(conversation.Participants, entity.ConversationParticipant{
			ConversationID: id,
			UserEmail:      email,
		})
	}
	f.conversations = append(f.conversations, conversation)
}

func (f *fakeConversationStore) FindAllByUserEmail(ctx context.Context, email string) ([]entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matching []entity.Conversation
	for _, conversation := range f.conversations {
		for _, p := range conversation.Participants {
			if p.UserEmail == email {
				matching = append(matching, conversation)
				break
			}
		}
	}
	return matching, nil
}

func (f *fakeConversationStore) FindByID(ctx context.Context, id string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.conversations {
		if f.conversations[i].ID == id {
			return &f.conversations[i], nil
		}
	}
	return nil, fmt.Errorf("conversation %s not found", id)
}

func (f *fakeConversationStore) ExistsBetween(ctx context.Context, emailA, emailB string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, conversation := range f.conversations {
		hasA, hasB := false, false
		for _, p := range conversation.Participants {
			if p.UserEmail == emailA {
				hasA = true
			}
			if p.UserEmail == emailB {
				hasB = true
			}
		}
		if hasA && hasB {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeConversationStore) CreateWithParticipants(ctx context.Context, conversation *entity.Conversation, emails []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createdCount++
	conversation.ID = fmt.Sprintf("conv-%d", f.createdCount)
	for _, email := range emails {
		conversation.Participants = append(conversation.Participants, entity.ConversationParticipant{
			ConversationID: conversation.ID,
			UserEmail:      email,
		})
	}
	f.conversations = append(f.conversations, *conversation)
	return nil
}

type fakeMessageStore struct {
	mu       sync.Mutex
	messages []entity.Message
	appended int
}

func (f *fakeMessageStore) FindByConversationID(ctx context.Context, conversationID string) ([]entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matching []entity.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			matching = append(matching, message)
		}
	}
	return matching, nil
}

func (f *fakeMessageStore) Append(ctx context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appended++
	// the store assigns id and timestamp at write-acceptance time
	message.ID = fmt.Sprintf("msg-%d", f.appended)
	message.SentAt = time.Now()
	f.messages = append(f.messages, *message)
	return nil
}

func messageFor(conversationID, user, text string) *entity.Message {
	return &entity.Message{ConversationID: conversationID, UserEmail: user, Text: text}
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]entity.User)}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) TouchLastSeen(ctx context.Context, email, photoURL string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		f.users[email] = entity.User{Email: email, PhotoURL: photoURL, LastSeen: at}
		return nil
	}
	// merge semantics: only lastSeen moves on an existing row
	user.LastSeen = at
	f.users[email] = user
	return nil
}
