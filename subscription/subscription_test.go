package subscription

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	mu      sync.Mutex
	values  []string
	fetches int
}

func (s *countingSource) set(values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
}

func (s *countingSource) fetch(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	return append([]string(nil), s.values...), nil
}

func (s *countingSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

func receive(t *testing.T, updates <-chan []string) []string {
	t.Helper()
	select {
	case update := <-updates:
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		panic("unreachable")
	}
}

func TestSubscribeDeliversInitialResultSet(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}
	source.set("a", "b")

	sub := Subscribe(context.Background(), hub, "topic", source.fetch)
	defer sub.Close()

	assert.Equal(t, []string{"a", "b"}, receive(t, sub.Updates()))
}

func TestPublishDeliversFullCurrentSet(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}
	source.set("a")

	sub := Subscribe(context.Background(), hub, "topic", source.fetch)
	defer sub.Close()

	assert.Equal(t, []string{"a"}, receive(t, sub.Updates()))

	source.set("a", "b")
	hub.Publish("topic")

	assert.Equal(t, []string{"a", "b"}, receive(t, sub.Updates()))
}

func TestPublishOnOtherTopicDoesNotDeliver(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}

	sub := Subscribe(context.Background(), hub, "topic", source.fetch)
	defer sub.Close()

	receive(t, sub.Updates())
	initialFetches := source.fetchCount()

	hub.Publish("unrelated")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, initialFetches, source.fetchCount())
	select {
	case <-sub.Updates():
		t.Fatal("unexpected update for unrelated topic")
	default:
	}
}

func TestSlowConsumerSeesNewestSet(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}
	source.set("a")

	sub := Subscribe(context.Background(), hub, "topic", source.fetch)
	defer sub.Close()

	// let the initial fetch land in the buffer, then overtake it twice
	// without consuming
	require.Eventually(t, func() bool { return source.fetchCount() >= 1 }, time.Second, 5*time.Millisecond)

	source.set("a", "b")
	hub.Publish("topic")
	require.Eventually(t, func() bool { return source.fetchCount() >= 2 }, time.Second, 5*time.Millisecond)

	source.set("a", "b", "c")
	hub.Publish("topic")
	require.Eventually(t, func() bool { return source.fetchCount() >= 3 }, time.Second, 5*time.Millisecond)

	// a stale buffered set is replaced, the newest state is what arrives
	assert.Eventually(t, func() bool {
		select {
		case update := <-sub.Updates():
			return len(update) == 3
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestCloseReleasesSubscription(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}

	sub := Subscribe(context.Background(), hub, "topic", source.fetch)
	receive(t, sub.Updates())

	sub.Close()
	sub.Close() // safe to call twice

	fetchesAtClose := source.fetchCount()
	hub.Publish("topic")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, fetchesAtClose, source.fetchCount())

	hub.mu.Lock()
	assert.Empty(t, hub.topics)
	hub.mu.Unlock()
}

func TestContextCancelStopsSubscription(t *testing.T) {
	hub := NewHub()
	source := &countingSource{}

	ctx, cancel := context.WithCancel(context.Background())
	sub := Subscribe(ctx, hub, "topic", source.fetch)
	defer sub.Close()

	receive(t, sub.Updates())
	cancel()

	time.Sleep(50 * time.Millisecond)
	fetchesAfterCancel := source.fetchCount()
	hub.Publish("topic")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, fetchesAfterCancel, source.fetchCount())
}

func TestTopicKeys(t *testing.T) {
	assert.Equal(t, "messages:conv1", MessagesTopic("conv1"))
	assert.Equal(t, "conversations:a@x.com", ConversationsTopic("a@x.com"))
	assert.Equal(t, "users:a@x.com", UserTopic("a@x.com"))
}
