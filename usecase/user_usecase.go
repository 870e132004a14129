package usecase

import (
	"context"

	"live-chat-app/dto/res"
)

type UserUsecase interface {
	// GetProfile returns nil when the user has no profile row yet; profiles
	// are created lazily on first send.
	GetProfile(ctx context.Context, email string) (*res.UserResponse, error)
}
