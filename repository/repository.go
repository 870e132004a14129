package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository[T any] struct {
	db *gorm.DB
}

func (repo Repository[T]) Save(ctx context.Context, entity *T) error {
	return repo.db.WithContext(ctx).Create(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, entity *T, id string) error {
	return repo.db.WithContext(ctx).Where("id = ?", id).Take(entity).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, entities *[]T) error {
	return repo.db.WithContext(ctx).Find(entities).Error
}
