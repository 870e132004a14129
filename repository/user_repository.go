package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"live-chat-app/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository[entity.User]{db: db}}
}

// FindByEmail returns nil without error when no profile row exists yet.
// Profiles are created lazily on first send, so absence is a normal state.
func (repo UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastSeen merge-updates the profile's lastSeen, creating the row on
// first send. Only last_seen is written on conflict; other fields keep their
// stored values.
func (repo UserRepository) TouchLastSeen(ctx context.Context, email, photoURL string, at time.Time) error {
	return repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_seen": at}),
		}).
		Create(&entity.User{Email: email, PhotoURL: photoURL, LastSeen: at}).Error
}
