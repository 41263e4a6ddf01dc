package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_budget_items_project_id" json:"projectId"`

	Category    string `gorm:"type:text;not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`

	Quantity  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unitPrice"`
	// Always Quantity * UnitPrice, recomputed by the service on create and update.
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalPrice"`
	Currency   string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// BudgetItem <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`

	// BudgetItem <-> Expense
	Expenses []Expense `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (b *BudgetItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (BudgetItem) TableName() string { return "budget_items" }
