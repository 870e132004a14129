package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"live-chat-app/handler"
	"live-chat-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.ConversationHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)

	app.Get("/auth/me", rc.AuthHandler.CurrentUser)
	app.Post("/auth/signout", rc.AuthHandler.SignOut)

	app.Get("/conversations", rc.ConversationHandler.GetConversations)
	app.Post("/conversations", rc.ConversationHandler.CreateConversation)
	app.Get("/conversations/:conversationId", rc.ConversationHandler.GetConversationPage)
	app.Post("/conversations/:conversationId/messages", rc.ConversationHandler.SendMessage)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws/conversations", websocket.New(wsHandler.HandleConversationsFeed))
	rc.App.Get("/ws/conversations/:conversationId/messages", websocket.New(wsHandler.HandleMessagesFeed))
	rc.App.Get("/ws/users", websocket.New(wsHandler.HandleRecipientFeed))
}
