package types

import (
	"time"

	"github.com/google/uuid"
)

type PestType string

const (
	PestWoollyAphid  PestType = "woolly_aphid"
	PestCodlingMoth  PestType = "codling_moth"
	PestScaleInsects PestType = "scale_insects"
	PestMites        PestType = "mites"
	PestLeafRoller   PestType = "leaf_roller"
)

type Effectiveness string

const (
	EffectivenessExcellent Effectiveness = "excellent"
	EffectivenessGood      Effectiveness = "good"
	EffectivenessFair      Effectiveness = "fair"
	EffectivenessPoor      Effectiveness = "poor"
)

type PestTreatment struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	TreeBlockID     uuid.UUID      `gorm:"type:uuid;not null;index;column:tree_block_id" json:"tree_block_id"`
	PestType        PestType       `gorm:"not null;column:pest_type" json:"pest_type"`
	TreatmentStep   int            `gorm:"not null;column:treatment_step" json:"treatment_step"`
	Chemical        string         `gorm:"not null;column:chemical" json:"chemical"`
	Dosage          string         `gorm:"not null;column:dosage" json:"dosage"`
	ApplicationDate time.Time      `gorm:"not null;column:application_date" json:"application_date"`
	Completed       bool           `gorm:"not null;default:false;column:completed" json:"completed"`
	NextDue         *time.Time     `gorm:"column:next_due" json:"next_due,omitempty"`
	Cost            float64        `gorm:"not null;column:cost" json:"cost"`
	Effectiveness   *Effectiveness `gorm:"column:effectiveness" json:"effectiveness,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PestTreatment) TableName() string {
	return "pest_treatments"
}
