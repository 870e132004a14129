package usecase

import (
	"context"

	"live-chat-app/config/logger"
	"live-chat-app/dto/res"
)

type UserUsecaseImpl struct {
	Users UserStore
	Log   *logger.AppLogger
}

func NewUserUsecase(users UserStore, log *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{Users: users, Log: log}
}

func (uc *UserUsecaseImpl) GetProfile(ctx context.Context, email string) (*res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().
		Str("email", email).
		Msg("Finding profile by email")

	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Str("email", email).
			Msg("Failed to find profile")
		return nil, err
	}
	if user == nil {
		uc.Log.Http.Trace.Trace().
			Str("email", email).
			Msg("No profile row yet")
		return nil, nil
	}

	formatted := FormatUser(*user)
	return &formatted, nil
}
