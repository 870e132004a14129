package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"live-chat-app/config/common"
	"live-chat-app/config/logger"
	"live-chat-app/handler"
	"live-chat-app/middleware"
	"live-chat-app/repository"
	"live-chat-app/routes"
	"live-chat-app/security"
	"live-chat-app/subscription"
	"live-chat-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLogger *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Hub *subscription.Hub
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := logrus.New()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, log)
	hub := subscription.NewHub()

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsOrigin(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLogger:  appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Hub:        hub,
	})

	if err := app.Listen(newConfig.GetServerAddress()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	db := aC.GetDB()
	accountRepository := repository.NewAccountRepository(db)
	userRepository := repository.NewUserRepository(db)
	conversationRepository := repository.NewConversationRepository(db)
	messageRepository := repository.NewMessageRepository(db)

	authUsecase := usecase.NewAuthUsecase(accountRepository, aC.Validate, aC.Logger, aC.JWT)
	userUsecase := usecase.NewUserUsecase(userRepository, aC.AppLogger)
	conversationUsecase := usecase.NewConversationUsecase(conversationRepository, messageRepository, userRepository, aC.Validate, aC.Hub, aC.Logger)
	messageUsecase := usecase.NewMessageUsecase(messageRepository, userRepository, aC.Hub, aC.Logger)

	authHandler := handler.NewAuthHandler(authUsecase, aC.Logger)
	conversationHandler := handler.NewConversationHandler(conversationUsecase, messageUsecase, aC.Logger, aC.JWT)
	wsHandler := handler.NewWebSocketHandler(aC.AppLogger, aC.Hub, conversationUsecase, messageUsecase, userUsecase, aC.JWT)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         authHandler,
		ConversationHandler: conversationHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
