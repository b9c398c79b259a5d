package types

import (
	"time"

	"github.com/google/uuid"
)

type GrowthStage string

const (
	StageSeeding    GrowthStage = "seeding"
	StageVegetative GrowthStage = "vegetative"
	StageFlowering  GrowthStage = "flowering"
	StageFruiting   GrowthStage = "fruiting"
	StageHarvesting GrowthStage = "harvesting"
)

type WeedState string

const (
	WeedLow    WeedState = "low"
	WeedMedium WeedState = "medium"
	WeedHigh   WeedState = "high"
)

type Field struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name         string      `gorm:"not null;column:name" json:"name"`
	Area         float64     `gorm:"not null;column:area" json:"area"`
	Crop         string      `gorm:"not null;column:crop" json:"crop"`
	PlantingDate time.Time   `gorm:"not null;column:planting_date" json:"planting_date"`
	GrowthStage  GrowthStage `gorm:"not null;column:growth_stage" json:"growth_stage"`
	WeedState    WeedState   `gorm:"not null;column:weed_state" json:"weed_state"`

	FertilizerApplications []FertilizerApplication `gorm:"foreignKey:FieldID" json:"fertilizer_applications"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Field) TableName() string {
	return "fields"
}
