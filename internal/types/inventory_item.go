package types

import (
	"time"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemFertilizer ItemType = "fertilizer"
	ItemPesticide  ItemType = "pesticide"
)

type InventoryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name         string     `gorm:"not null;column:name" json:"name"`
	ItemType     ItemType   `gorm:"not null;column:item_type" json:"item_type"`
	Quantity     float64    `gorm:"not null;column:quantity" json:"quantity"`
	Unit         string     `gorm:"not null;column:unit" json:"unit"`
	PricePerUnit float64    `gorm:"not null;column:price_per_unit" json:"price_per_unit"`
	Supplier     string     `gorm:"column:supplier" json:"supplier"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
