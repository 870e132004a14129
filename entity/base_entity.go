package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseEntity struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (base *BaseEntity) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}
