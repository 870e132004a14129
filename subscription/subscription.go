package subscription

import (
	"context"
	"sync"
)

// Subscription is a standing query owned by exactly one view session. It
// delivers the full current result set immediately on creation and again after
// every relevant change, Close releasing it when the owning session ends.
type Subscription[T any] struct {
	updates chan T
	done    chan struct{}
	once    sync.Once
	release func()
}

// Subscribe registers a standing query on the hub. fetch is run once up front
// and re-run on every publish to the topic; each successful fetch replaces any
// undelivered result set, so a slow consumer only ever sees the newest state.
// A fetch failure skips the push; the caller's fetch closure owns the logging.
func Subscribe[T any](ctx context.Context, hub *Hub, topic string, fetch func(context.Context) (T, error)) *Subscription[T] {
	notify := hub.register(topic)

	sub := &Subscription[T]{
		updates: make(chan T, 1),
		done:    make(chan struct{}),
		release: func() { hub.unregister(topic, notify) },
	}

	go func() {
		if result, err := fetch(ctx); err == nil {
			sub.push(result)
		}
		for {
			select {
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			case <-notify:
				if result, err := fetch(ctx); err == nil {
					sub.push(result)
				}
			}
		}
	}()

	return sub
}

// Updates is the result-set stream. Each value is a complete current result
// set for the subscribed query, never an increment.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		close(s.done)
		s.release()
	})
}

func (s *Subscription[T]) push(result T) {
	for {
		select {
		case <-s.done:
			return
		case s.updates <- result:
			return
		default:
		}
		// buffer holds a stale set; drop it and retry with the newer one
		select {
		case <-s.updates:
		default:
		}
	}
}
