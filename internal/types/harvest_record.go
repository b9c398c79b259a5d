package types

import (
	"time"

	"github.com/google/uuid"
)

type QualityGrade string

const (
	GradePremium    QualityGrade = "premium"
	GradeStandard   QualityGrade = "standard"
	GradeProcessing QualityGrade = "processing"
)

// HarvestRecord carries the variety denormalized from its tree block so that
// per-variety reporting does not need the join.
type HarvestRecord struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	TreeBlockID     uuid.UUID    `gorm:"type:uuid;not null;index;column:tree_block_id" json:"tree_block_id"`
	Variety         string       `gorm:"not null;column:variety" json:"variety"`
	BinCount        float64      `gorm:"not null;column:bin_count" json:"bin_count"`
	QualityGrade    QualityGrade `gorm:"not null;column:quality_grade" json:"quality_grade"`
	HarvestDate     time.Time    `gorm:"not null;column:harvest_date" json:"harvest_date"`
	PricePerBin     float64      `gorm:"not null;column:price_per_bin" json:"price_per_bin"`
	TotalRevenue    float64      `gorm:"not null;column:total_revenue" json:"total_revenue"`
	StorageLocation string       `gorm:"column:storage_location" json:"storage_location"`
	ShelfLifeDays   int          `gorm:"column:shelf_life_days" json:"shelf_life_days"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (HarvestRecord) TableName() string {
	return "harvest_records"
}
