package types

import (
	"time"

	"github.com/google/uuid"
)

type Ownership string

const (
	OwnershipOwned  Ownership = "owned"
	OwnershipLeased Ownership = "leased"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

type Equipment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name            string    `gorm:"not null;column:name" json:"name"`
	Type            string    `gorm:"not null;column:type" json:"type"`
	Ownership       Ownership `gorm:"not null;column:ownership" json:"ownership"`
	DailyCost       float64   `gorm:"not null;column:daily_cost" json:"daily_cost"`
	Condition       Condition `gorm:"not null;column:condition" json:"condition"`
	LastMaintenance time.Time `gorm:"not null;column:last_maintenance" json:"last_maintenance"`
	NextService     time.Time `gorm:"not null;column:next_service" json:"next_service"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}
