package usecase

import (
	"context"

	"live-chat-app/dto/req"
	"live-chat-app/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, req *req.RegisterRequest) (res.RegisterResponse, error)
	LoginUser(ctx context.Context, req *req.LoginRequest) (res.LoginResponse, error)
	CurrentUser(token string) (res.CurrentUserResponse, error)
	SignOut(token string)
}
