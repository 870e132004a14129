package subscription

import (
	"fmt"
	"sync"
)

// Hub routes change notifications from writers to standing queries. A writer
// publishes the topics its write touched; every subscription registered on a
// topic re-runs its query and pushes the full new result set downstream.
type Hub struct {
	mu     sync.Mutex
	topics map[string]map[chan struct{}]bool
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[chan struct{}]bool),
	}
}

// Publish notifies every subscription on the given topics. Notification is a
// level trigger, not a payload: a pending notify already covers this change.
func (h *Hub) Publish(topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, topic := range topics {
		for notify := range h.topics[topic] {
			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}
}

func (h *Hub) register(topic string) chan struct{} {
	notify := make(chan struct{}, 1)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[chan struct{}]bool)
	}
	h.topics[topic][notify] = true
	return notify
}

func (h *Hub) unregister(topic string, notify chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.topics[topic]; ok {
		delete(subs, notify)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
}

// MessagesTopic keys the message feed of one conversation.
func MessagesTopic(conversationID string) string {
	return fmt.Sprintf("messages:%s", conversationID)
}

// ConversationsTopic keys the sidebar feed of one participant.
func ConversationsTopic(email string) string {
	return fmt.Sprintf("conversations:%s", email)
}

// UserTopic keys the profile feed of one user.
func UserTopic(email string) string {
	return fmt.Sprintf("users:%s", email)
}
