package enum

// FeedSource tags which source a message feed frame was rendered from. The
// view renders the one-time snapshot until the live subscription produces its
// first result set, then the live feed exclusively.
type FeedSource string

const (
	FeedSourceSnapshot FeedSource = "snapshot"
	FeedSourceLive     FeedSource = "live"
)
