package types

import (
	"time"

	"gorm.io/datatypes"
)

// RotationStep is one year of a multi-year rotation plan, keyed by the crop
// the plan starts from. Reference data seeded from the rotations knowledge
// base, shared across users and never edited through the API.
type RotationStep struct {
	BaseCrop       string         `gorm:"primaryKey;column:base_crop" json:"base_crop"`
	Year           int            `gorm:"primaryKey;column:year" json:"year"`
	Crop           string         `gorm:"not null;column:crop" json:"crop"`
	Benefits       datatypes.JSON `gorm:"column:benefits" json:"benefits"`
	PlantingWindow string         `gorm:"not null;column:planting_window" json:"planting_window"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (RotationStep) TableName() string {
	return "rotation_steps"
}
