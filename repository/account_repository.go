package repository

import (
	"context"

	"gorm.io/gorm"

	"live-chat-app/entity"
)

type AccountRepository struct {
	Repository[entity.Account]
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{Repository[entity.Account]{db: db}}
}

func (repo AccountRepository) FindByEmail(ctx context.Context, email string) (entity.Account, error) {
	account := &entity.Account{}
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(account).Error
	if err != nil {
		return *account, err
	}
	return *account, nil
}
