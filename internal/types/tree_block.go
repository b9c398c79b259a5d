package types

import (
	"time"

	"github.com/google/uuid"
)

type TreeStatus string

const (
	TreeHealthy  TreeStatus = "healthy"
	TreeDiseased TreeStatus = "diseased"
	TreePruned   TreeStatus = "pruned"
	TreeDormant  TreeStatus = "dormant"
)

// TreeBlock is a row-level grouping of same-variety trees within a field,
// the unit of yield and pest tracking.
type TreeBlock struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	FieldID       uuid.UUID  `gorm:"type:uuid;not null;index;column:field_id" json:"field_id"`
	Variety       string     `gorm:"not null;column:variety" json:"variety"`
	Row           int        `gorm:"not null;column:row" json:"row"`
	TreeCount     int        `gorm:"not null;column:tree_count" json:"tree_count"`
	Status        TreeStatus `gorm:"not null;column:status" json:"status"`
	PlantingYear  int        `gorm:"not null;column:planting_year" json:"planting_year"`
	LastPruned    *time.Time `gorm:"column:last_pruned" json:"last_pruned,omitempty"`
	YieldEstimate float64    `gorm:"column:yield_estimate" json:"yield_estimate"`

	Field *Field `gorm:"foreignKey:FieldID" json:"field,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (TreeBlock) TableName() string {
	return "tree_blocks"
}
