package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    uuid.UUID  `gorm:"type:uuid;not null;index:ix_expenses_project_id" json:"projectId"`
	BudgetItemID *uuid.UUID `gorm:"type:uuid;index" json:"budgetItemId,omitempty"`

	Description  string          `gorm:"type:text;not null" json:"description"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Currency     string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`
	ExchangeRate decimal.Decimal `gorm:"type:numeric(14,4);not null;default:1" json:"exchangeRate"`
	Category     string          `gorm:"type:text;not null;index:ix_expenses_category" json:"category"`
	Date         time.Time       `gorm:"not null;index:ix_expenses_date" json:"date"`

	// When both are set, creating the expense mirrors a PAID invoice
	// under the same number (unless one already exists).
	InvoiceNumber *string `gorm:"type:text;index:ix_expenses_invoice_number" json:"invoiceNumber,omitempty"`
	Supplier      *string `gorm:"type:text" json:"supplier,omitempty"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"createdById"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Expense <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`

	// Expense <-> BudgetItem
	BudgetItem *BudgetItem `gorm:"foreignKey:BudgetItemID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"budgetItem,omitempty"`
}

// HasInvoiceRef reports whether the expense carries both an invoice number
// and a supplier, the precondition for the mirrored invoice.
func (e *Expense) HasInvoiceRef() bool {
	return e.InvoiceNumber != nil && *e.InvoiceNumber != "" &&
		e.Supplier != nil && *e.Supplier != ""
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (Expense) TableName() string { return "expenses" }
