package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"live-chat-app/dto/req"
	"live-chat-app/dto/res"
	"live-chat-app/security"
	"live-chat-app/usecase"
)

type ConversationHandler struct {
	usecase.ConversationUsecase
	usecase.MessageUsecase
	*logrus.Logger
	*security.JWT
}

func NewConversationHandler(conversationUsecase usecase.ConversationUsecase, messageUsecase usecase.MessageUsecase, logger *logrus.Logger, JWT *security.JWT) *ConversationHandler {
	return &ConversationHandler{
		ConversationUsecase: conversationUsecase,
		MessageUsecase:      messageUsecase,
		Logger:              logger,
		JWT:                 JWT,
	}
}

// GetConversations returns the sidebar's conversation snapshot: every
// conversation whose participant set contains the current user.
func (handler *ConversationHandler) GetConversations(c *fiber.Ctx) error {
	currentUser, err := handler.JWT.GetCurrentUser(bearerToken(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	conversations, err := handler.ConversationUsecase.ListConversations(c.Context(), currentUser.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	responses := res.CommonResponse[[]res.ConversationResponse]{
		Message:    "Successfully got all conversations",
		StatusCode: fiber.StatusOK,
		Data:       conversations,
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

// CreateConversation starts a new two-party conversation. A blocked attempt
// (bad email syntax, self-invite, duplicate) answers ok with no data and no
// error payload; the dialog simply closes without a new conversation.
func (handler *ConversationHandler) CreateConversation(c *fiber.Ctx) error {
	currentUser, err := handler.JWT.GetCurrentUser(bearerToken(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	payload := new(req.CreateConversationRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	conversation, err := handler.ConversationUsecase.CreateConversation(c.Context(), currentUser.Email, payload.RecipientEmail)
	if err != nil {
		if isBlockedCreate(err) {
			handler.Logger.WithError(err).Info("Conversation creation blocked")
			return c.Status(fiber.StatusOK).JSON(res.CommonResponse[*res.ConversationResponse]{
				Message:    "Conversation not created",
				StatusCode: fiber.StatusOK,
			})
		}
		handler.Logger.WithError(err).Error("Failed to create conversation")
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[*res.ConversationResponse]{
		Message:    "Successfully created conversation",
		StatusCode: fiber.StatusOK,
		Data:       conversation,
	})
}

// GetConversationPage resolves a conversation by its route identifier and
// returns the server-rendered initial state the view is seeded with.
func (handler *ConversationHandler) GetConversationPage(c *fiber.Ctx) error {
	currentUser, err := handler.JWT.GetCurrentUser(bearerToken(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	conversationID := c.Params("conversationId")
	if conversationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "conversationId is required",
		})
	}

	page, err := handler.ConversationUsecase.GetConversationPage(c.Context(), currentUser.Email, conversationID)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to load conversation page")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.ConversationPageResponse]{
		Message:    "Successfully loaded conversation",
		StatusCode: fiber.StatusOK,
		Data:       page,
	})
}

// SendMessage is the explicit-submit send path; the websocket frame path in
// the feed handler shares the same empty-text gate.
func (handler *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	currentUser, err := handler.JWT.GetCurrentUser(bearerToken(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}

	conversationID := c.Params("conversationId")
	payload := new(req.SendMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.MessageUsecase.SendMessage(c.Context(), currentUser, conversationID, payload.Text); err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			handler.Logger.WithError(err).Info("Send blocked")
			return c.Status(fiber.StatusOK).JSON(res.CommonResponse[struct{}]{
				Message:    "Message not sent",
				StatusCode: fiber.StatusOK,
			})
		}
		handler.Logger.WithError(err).Error("Failed to send message")
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[struct{}]{
		Message:    "Message sent",
		StatusCode: fiber.StatusOK,
	})
}

func isBlockedCreate(err error) bool {
	return errors.Is(err, usecase.ErrInvalidEmail) ||
		errors.Is(err, usecase.ErrSelfInvite) ||
		errors.Is(err, usecase.ErrConversationExists)
}
