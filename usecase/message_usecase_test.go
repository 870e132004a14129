package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"live-chat-app/dto/res"
	"live-chat-app/security"
	"live-chat-app/subscription"
)

func newMessageUsecase(messages *fakeMessageStore, users *fakeUserStore, hub *subscription.Hub) MessageUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMessageUsecase(messages, users, hub, log)
}

func TestSendMessage(t *testing.T) {
	messages := &fakeMessageStore{}
	users := newFakeUserStore()
	uc := newMessageUsecase(messages, users, subscription.NewHub())

	sender := security.CurrentUser{Email: "a@x.com", PhotoURL: "http://x.com/a.png"}
	before := time.Now().Add(-time.Hour)
	require.NoError(t, users.TouchLastSeen(context.Background(), "a@x.com", "", before))

	err := uc.SendMessage(context.Background(), sender, "conv1", "hi")
	require.NoError(t, err)

	// exactly one message appended with the requested fields
	require.Equal(t, 1, messages.appended)
	stored := messages.messages[0]
	assert.Equal(t, "conv1", stored.ConversationID)
	assert.Equal(t, "a@x.com", stored.UserEmail)
	assert.Equal(t, "hi", stored.Text)
	assert.False(t, stored.SentAt.IsZero())

	// the sender's lastSeen advanced past its previous value
	profile, err := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.LastSeen.After(before))
}

func TestSendMessageCreatesProfileLazily(t *testing.T) {
	messages := &fakeMessageStore{}
	users := newFakeUserStore()
	uc := newMessageUsecase(messages, users, subscription.NewHub())

	sender := security.CurrentUser{Email: "new@x.com", PhotoURL: "http://x.com/n.png"}
	require.NoError(t, uc.SendMessage(context.Background(), sender, "conv1", "first ever"))

	profile, err := users.FindByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "http://x.com/n.png", profile.PhotoURL)
}

func TestSendMessageBlocksEmptyText(t *testing.T) {
	messages := &fakeMessageStore{}
	users := newFakeUserStore()
	uc := newMessageUsecase(messages, users, subscription.NewHub())

	err := uc.SendMessage(context.Background(), security.CurrentUser{Email: "a@x.com"}, "conv1", "")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Zero(t, messages.appended)

	profile, findErr := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, findErr)
	assert.Nil(t, profile, "a blocked send must not touch lastSeen")
}

// A sent message is never echoed locally; it reaches the view only once the
// live subscription re-delivers the conversation's result set.
func TestSendMessageRoundTripThroughSubscription(t *testing.T) {
	messages := &fakeMessageStore{}
	users := newFakeUserStore()
	hub := subscription.NewHub()
	uc := newMessageUsecase(messages, users, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := subscription.Subscribe(ctx, hub, subscription.MessagesTopic("conv1"),
		func(ctx context.Context) ([]res.MessageResponse, error) {
			return uc.GetMessages(ctx, "conv1")
		})
	defer sub.Close()

	// initial result set is empty
	initial := waitForUpdate(t, sub.Updates())
	assert.Empty(t, initial)

	sender := security.CurrentUser{Email: "a@x.com"}
	require.NoError(t, uc.SendMessage(context.Background(), sender, "conv1", "hello"))

	delivered := waitForUpdate(t, sub.Updates())
	require.Len(t, delivered, 1)
	assert.Equal(t, "hello", delivered[0].Text)
	assert.Equal(t, "a@x.com", delivered[0].User)
	require.NotNil(t, delivered[0].SentAt)
}

func waitForUpdate[T any](t *testing.T, updates <-chan T) T {
	t.Helper()
	select {
	case update := <-updates:
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscription update")
		panic("unreachable")
	}
}
