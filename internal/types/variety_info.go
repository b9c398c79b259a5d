package types

import (
	"time"

	"gorm.io/datatypes"
)

type MarketDemand string

const (
	DemandHigh   MarketDemand = "high"
	DemandMedium MarketDemand = "medium"
	DemandLow    MarketDemand = "low"
)

// VarietyInfo is reference data about an apple variety, seeded from the
// varieties knowledge base. It is shared across users and never edited
// through the API.
type VarietyInfo struct {
	Name            string         `gorm:"primaryKey;column:name" json:"name"`
	HarvestSeason   string         `gorm:"not null;column:harvest_season" json:"harvest_season"`
	AvgPricePerBin  float64        `gorm:"not null;column:avg_price_per_bin" json:"avg_price_per_bin"`
	StorageLifeDays int            `gorm:"not null;column:storage_life_days" json:"storage_life_days"`
	CommonPests     datatypes.JSON `gorm:"column:common_pests" json:"common_pests"`
	MarketDemand    MarketDemand   `gorm:"not null;column:market_demand" json:"market_demand"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (VarietyInfo) TableName() string {
	return "variety_infos"
}
