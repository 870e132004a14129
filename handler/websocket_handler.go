package handler

import (
	"context"
	"errors"

	"github.com/gofiber/contrib/websocket"

	"live-chat-app/config/logger"
	"live-chat-app/dto/req"
	"live-chat-app/dto/res"
	"live-chat-app/security"
	"live-chat-app/subscription"
	"live-chat-app/usecase"
)

// WebSocketHandler owns the live feeds. Every feed follows the same shape:
// authenticate, open a subscription bound to this connection's lifetime, push
// each full result set as one frame, release the subscription on teardown.
type WebSocketHandler struct {
	Log *logger.AppLogger
	Hub *subscription.Hub
	usecase.ConversationUsecase
	usecase.MessageUsecase
	usecase.UserUsecase
	*security.JWT
}

func NewWebSocketHandler(log *logger.AppLogger, hub *subscription.Hub, conversationUsecase usecase.ConversationUsecase, messageUsecase usecase.MessageUsecase, userUsecase usecase.UserUsecase, JWT *security.JWT) *WebSocketHandler {
	return &WebSocketHandler{
		Log:                 log,
		Hub:                 hub,
		ConversationUsecase: conversationUsecase,
		MessageUsecase:      messageUsecase,
		UserUsecase:         userUsecase,
		JWT:                 JWT,
	}
}

// HandleConversationsFeed serves the sidebar: the full set of conversations
// containing the current user, re-delivered on every change, for the lifetime
// of the connection.
func (handler *WebSocketHandler) HandleConversationsFeed(c *websocket.Conn) {
	defer c.Close()

	currentUser, ok := handler.authenticate(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := subscription.Subscribe(ctx, handler.Hub, subscription.ConversationsTopic(currentUser.Email),
		func(ctx context.Context) ([]res.ConversationResponse, error) {
			return handler.ConversationUsecase.ListConversations(ctx, currentUser.Email)
		})
	defer sub.Close()

	handler.Log.Feed.Info.Info().
		Str("email", currentUser.Email).
		Msg("Sidebar feed opened")

	readerDone := discardReads(c)
	for {
		select {
		case <-readerDone:
			handler.Log.Feed.Info.Info().
				Str("email", currentUser.Email).
				Msg("Sidebar feed closed")
			return
		case conversations := <-sub.Updates():
			frame := res.ConversationFeedFrame{Conversations: conversations}
			if err := c.WriteJSON(frame); err != nil {
				handler.Log.Feed.Warning.Warn().Err(err).Msg("Failed to push sidebar frame")
				return
			}
		}
	}
}

// HandleMessagesFeed serves one conversation view. The session is seeded with
// the one-time snapshot, then a live subscription takes over: once the first
// live result set arrives the snapshot is discarded for good and every frame
// renders the live set exclusively.
func (handler *WebSocketHandler) HandleMessagesFeed(c *websocket.Conn) {
	defer c.Close()

	currentUser, ok := handler.authenticate(c)
	if !ok {
		return
	}

	conversationID := c.Params("conversationId")
	if conversationID == "" {
		handler.Log.Feed.Warning.Warn().Msg("Message feed request missing conversationId")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshot, err := handler.MessageUsecase.GetMessages(ctx, conversationID)
	if err != nil {
		handler.Log.Feed.Error.Error().
			Err(err).
			Str("conversationId", conversationID).
			Msg("Failed to fetch initial snapshot")
		return
	}

	feed := usecase.NewMessageFeed(conversationID, snapshot)
	if err := c.WriteJSON(feed.Frame()); err != nil {
		return
	}

	sub := subscription.Subscribe(ctx, handler.Hub, subscription.MessagesTopic(conversationID),
		func(ctx context.Context) ([]res.MessageResponse, error) {
			return handler.MessageUsecase.GetMessages(ctx, conversationID)
		})
	defer sub.Close()

	handler.Log.Feed.Info.Info().
		Str("email", currentUser.Email).
		Str("conversationId", conversationID).
		Msg("Message feed opened")

	readerDone := handler.readSends(c, currentUser, conversationID)
	for {
		select {
		case <-readerDone:
			handler.Log.Feed.Info.Info().
				Str("conversationId", conversationID).
				Msg("Message feed closed")
			return
		case resultSet := <-sub.Updates():
			feed.ApplyLive(resultSet)
			if err := c.WriteJSON(feed.Frame()); err != nil {
				handler.Log.Feed.Warning.Warn().Err(err).Msg("Failed to push message frame")
				return
			}
		}
	}
}

// HandleRecipientFeed serves the recipient profile: the single matching user
// row, found=false while the recipient has never sent and has no row yet.
func (handler *WebSocketHandler) HandleRecipientFeed(c *websocket.Conn) {
	defer c.Close()

	if _, ok := handler.authenticate(c); !ok {
		return
	}

	email := c.Query("email")
	if email == "" {
		handler.Log.Feed.Warning.Warn().Msg("Recipient feed request missing email")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := subscription.Subscribe(ctx, handler.Hub, subscription.UserTopic(email),
		func(ctx context.Context) (*res.UserResponse, error) {
			return handler.UserUsecase.GetProfile(ctx, email)
		})
	defer sub.Close()

	readerDone := discardReads(c)
	for {
		select {
		case <-readerDone:
			return
		case profile := <-sub.Updates():
			frame := res.RecipientFeedFrame{Found: profile != nil, Recipient: profile}
			if err := c.WriteJSON(frame); err != nil {
				return
			}
		}
	}
}

// readSends consumes inbound send frames for a conversation session. Empty
// text never reaches the store: the websocket path and the REST submit path
// share the usecase's gate, and a blocked or failed send is logged only.
func (handler *WebSocketHandler) readSends(c *websocket.Conn, sender security.CurrentUser, conversationID string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var payload req.SendMessageRequest
			if err := c.ReadJSON(&payload); err != nil {
				return
			}

			err := handler.MessageUsecase.SendMessage(context.Background(), sender, conversationID, payload.Text)
			if errors.Is(err, usecase.ErrEmptyMessage) {
				handler.Log.Feed.Trace.Trace().Msg("Empty send frame ignored")
				continue
			}
			if err != nil {
				handler.Log.Feed.Error.Error().
					Err(err).
					Str("conversationId", conversationID).
					Msg("Send failed")
			}
		}
	}()
	return done
}

func (handler *WebSocketHandler) authenticate(c *websocket.Conn) (security.CurrentUser, bool) {
	currentUser, err := handler.JWT.GetCurrentUser(c.Query("token"))
	if err != nil {
		handler.Log.Feed.Warning.Warn().Err(err).Msg("Rejected unauthenticated feed connection")
		return security.CurrentUser{}, false
	}
	return currentUser, true
}

// discardReads drains inbound frames from a read-only feed so the connection
// close is noticed; the returned channel closes when the peer goes away.
func discardReads(c *websocket.Conn) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return done
}
