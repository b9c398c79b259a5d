package types

import (
	"time"

	"github.com/google/uuid"
)

type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

type FinanceCategory string

const (
	CategorySales      FinanceCategory = "sales"
	CategoryPurchases  FinanceCategory = "purchases"
	CategoryEquipment  FinanceCategory = "equipment"
	CategoryFertilizer FinanceCategory = "fertilizer"
	CategoryPesticide  FinanceCategory = "pesticide"
	CategoryLabor      FinanceCategory = "labor"
	CategoryOther      FinanceCategory = "other"
)

type FinancialEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Date        time.Time       `gorm:"not null;column:date" json:"date"`
	Description string          `gorm:"not null;column:description" json:"description"`
	Category    FinanceCategory `gorm:"not null;column:category" json:"category"`
	Amount      float64         `gorm:"not null;column:amount" json:"amount"`
	EntryType   EntryType       `gorm:"not null;column:entry_type" json:"entry_type"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (FinancialEntry) TableName() string {
	return "financial_entries"
}
