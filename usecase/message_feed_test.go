package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"live-chat-app/dto/res"
	"live-chat-app/enum"
)

func displaySet(ids ...string) []res.MessageResponse {
	set := make([]res.MessageResponse, 0, len(ids))
	for _, id := range ids {
		set = append(set, res.MessageResponse{ID: id, ConversationID: "conv-1"})
	}
	return set
}

func TestMessageFeedRendersSnapshotUntilLiveArrives(t *testing.T) {
	snapshot := displaySet("m1", "m2")
	feed := NewMessageFeed("conv-1", snapshot)

	assert.Equal(t, snapshot, feed.Rendered())
	assert.Equal(t, enum.FeedSourceSnapshot, feed.Source())
	assert.Equal(t, "m2", feed.LatestID())
}

func TestMessageFeedSwitchesToLiveExactly(t *testing.T) {
	snapshot := displaySet("m1", "m2")
	live := displaySet("m1", "m2", "m3")

	feed := NewMessageFeed("conv-1", snapshot)
	feed.ApplyLive(live)

	// the rendered list is the live set exactly, never a union with the snapshot
	assert.Equal(t, live, feed.Rendered())
	assert.Equal(t, enum.FeedSourceLive, feed.Source())
	assert.Equal(t, "m3", feed.LatestID())
}

func TestMessageFeedSwitchIsPermanent(t *testing.T) {
	feed := NewMessageFeed("conv-1", displaySet("m1", "m2"))

	// even a live set smaller than the snapshot replaces it wholesale; the
	// snapshot is never consulted again after the first live delivery
	feed.ApplyLive(displaySet("m1"))
	assert.Equal(t, displaySet("m1"), feed.Rendered())

	feed.ApplyLive(displaySet("m1", "m4"))
	assert.Equal(t, displaySet("m1", "m4"), feed.Rendered())
	assert.Equal(t, enum.FeedSourceLive, feed.Source())
}

func TestMessageFeedEmptyStates(t *testing.T) {
	feed := NewMessageFeed("conv-1", nil)

	assert.Empty(t, feed.Rendered())
	assert.Equal(t, "", feed.LatestID())

	feed.ApplyLive(nil)
	assert.Equal(t, enum.FeedSourceLive, feed.Source())
	assert.Equal(t, "", feed.LatestID())
}

func TestMessageFeedFrame(t *testing.T) {
	feed := NewMessageFeed("conv-1", displaySet("m1"))

	frame := feed.Frame()
	assert.Equal(t, "conv-1", frame.ConversationID)
	assert.Equal(t, enum.FeedSourceSnapshot, frame.Source)
	assert.Equal(t, "m1", frame.LatestID)

	feed.ApplyLive(displaySet("m1", "m2"))
	frame = feed.Frame()
	assert.Equal(t, enum.FeedSourceLive, frame.Source)
	assert.Equal(t, "m2", frame.LatestID)
	assert.Len(t, frame.Messages, 2)
}
