package types

import (
	"time"

	"github.com/google/uuid"
)

type FertilizerApplication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	FieldID   uuid.UUID `gorm:"type:uuid;not null;index;column:field_id" json:"field_id"`
	Type      string    `gorm:"not null;column:type" json:"type"`
	Amount    float64   `gorm:"not null;column:amount" json:"amount"`
	Date      time.Time `gorm:"not null;column:date" json:"date"`
	Cost      float64   `gorm:"not null;column:cost" json:"cost"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (FertilizerApplication) TableName() string {
	return "fertilizer_applications"
}
