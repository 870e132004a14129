package usecase

import (
	"live-chat-app/dto/res"
	"live-chat-app/enum"
)

// MessageFeed reconciles the two message sources of one conversation view:
// the one-time snapshot fetched before first render, and the live
// subscription established afterwards. The policy is switch, not merge: the
// snapshot renders in full until the live subscription produces its first
// result set; from then on the live set renders exclusively and permanently.
// The live set is a superset of the snapshot under the same predicate and
// order, so interleaving the two could only duplicate or misorder entries.
//
// A MessageFeed is owned by a single session goroutine and is not safe for
// concurrent use.
type MessageFeed struct {
	conversationID string
	snapshot       []res.MessageResponse
	live           []res.MessageResponse
	liveArrived    bool
}

func NewMessageFeed(conversationID string, snapshot []res.MessageResponse) *MessageFeed {
	return &MessageFeed{
		conversationID: conversationID,
		snapshot:       snapshot,
	}
}

// ApplyLive installs a live result set. The first call permanently retires
// the snapshot; every call replaces the previous live set wholesale.
func (f *MessageFeed) ApplyLive(resultSet []res.MessageResponse) {
	f.live = resultSet
	if !f.liveArrived {
		f.liveArrived = true
		f.snapshot = nil
	}
}

// Rendered is the list the view shows right now.
func (f *MessageFeed) Rendered() []res.MessageResponse {
	if f.liveArrived {
		return f.live
	}
	return f.snapshot
}

func (f *MessageFeed) Source() enum.FeedSource {
	if f.liveArrived {
		return enum.FeedSourceLive
	}
	return enum.FeedSourceSnapshot
}

// LatestID is the auto-scroll anchor: the id of the last rendered message.
func (f *MessageFeed) LatestID() string {
	rendered := f.Rendered()
	if len(rendered) == 0 {
		return ""
	}
	return rendered[len(rendered)-1].ID
}

// Frame packages the current rendered state for one websocket push.
func (f *MessageFeed) Frame() res.MessageFeedFrame {
	return res.MessageFeedFrame{
		ConversationID: f.conversationID,
		Source:         f.Source(),
		Messages:       f.Rendered(),
		LatestID:       f.LatestID(),
	}
}
