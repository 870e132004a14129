package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"live-chat-app/dto/req"
	"live-chat-app/dto/res"
	"live-chat-app/entity"
	"live-chat-app/security"
	"live-chat-app/util"
)

var errInvalidCredentials = errors.New("invalid email or password")

type AuthUsecaseImpl struct {
	Accounts AccountStore
	*validator.Validate
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(accounts AccountStore, validate *validator.Validate, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{Accounts: accounts, Validate: validate, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, req *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(req); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate register request")
		return res.RegisterResponse{}, err
	}

	hashPassword, err := util.HashPassword(req.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to hash password")
		return res.RegisterResponse{}, err
	}

	newAccount := &entity.Account{
		Email:    req.Email,
		Password: hashPassword,
		PhotoURL: req.PhotoURL,
	}
	if err := uc.Accounts.Save(ctx, newAccount); err != nil {
		uc.Logger.WithError(err).Error("Failed to save account")
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{
		ID:    newAccount.ID,
		Email: newAccount.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, req *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(req); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate login request")
		return res.LoginResponse{}, err
	}

	currentAccount, err := uc.Accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to find account by email")
		return res.LoginResponse{}, errInvalidCredentials
	}

	if !util.ComparePassword(currentAccount.Password, req.Password) {
		uc.Logger.Warn("Password mismatch on login")
		return res.LoginResponse{}, errInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(&currentAccount)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{Token: token}, nil
}

// CurrentUser is the identity boundary's accessor: {identifier, photoURL}
// for a valid token, an error for everything else.
func (uc *AuthUsecaseImpl) CurrentUser(token string) (res.CurrentUserResponse, error) {
	user, err := uc.JWT.GetCurrentUser(token)
	if err != nil {
		return res.CurrentUserResponse{}, err
	}
	return res.CurrentUserResponse{
		Email:    user.Email,
		PhotoURL: user.PhotoURL,
	}, nil
}

// SignOut is the one explicitly guarded external call: a failure is caught
// and logged to the diagnostic channel, never surfaced to the user.
func (uc *AuthUsecaseImpl) SignOut(token string) {
	if _, err := uc.JWT.GetCurrentUser(token); err != nil {
		uc.Logger.WithError(err).Error("ERROR LOGGING OUT")
	}
}
