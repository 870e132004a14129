package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"live-chat-app/dto/req"
	"live-chat-app/dto/res"
	"live-chat-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	registerResponse, err := handler.AuthUsecase.RegisterUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		return err
	}

	response := res.CommonResponse[res.RegisterResponse]{
		Message:    "Successfully registered new user",
		StatusCode: fiber.StatusOK,
		Data:       registerResponse,
	}
	handler.Logger.Infof("Registered user with id: %s", registerResponse.ID)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}

	loginResponse, err := handler.AuthUsecase.LoginUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return fiber.ErrUnauthorized
	}

	response := res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully logged in",
		StatusCode: fiber.StatusOK,
		Data:       loginResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// CurrentUser is the identity accessor behind the authenticated UI shell.
func (handler *AuthHandler) CurrentUser(ctx *fiber.Ctx) error {
	token := bearerToken(ctx)

	userResponse, err := handler.AuthUsecase.CurrentUser(token)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to resolve current user")
		return fiber.ErrUnauthorized
	}

	response := res.CommonResponse[res.CurrentUserResponse]{
		Message:    "Successfully resolved current user",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// SignOut always answers ok; a failure inside the sign-out call is logged to
// the diagnostic channel only.
func (handler *AuthHandler) SignOut(ctx *fiber.Ctx) error {
	handler.AuthUsecase.SignOut(bearerToken(ctx))

	response := res.CommonResponse[struct{}]{
		Message:    "Signed out",
		StatusCode: fiber.StatusOK,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func bearerToken(ctx *fiber.Ctx) string {
	header := ctx.Get("Authorization")
	if len(header) <= 7 {
		return ""
	}
	return header[7:]
}
