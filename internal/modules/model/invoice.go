package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_invoices_project_id" json:"projectId"`

	// Globally unique, also the join key back to expenses.
	InvoiceNumber string `gorm:"type:text;not null;uniqueIndex:uq_invoices_number" json:"invoiceNumber"`
	Supplier      string `gorm:"type:text;not null" json:"supplier"`

	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Currency     string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`
	ExchangeRate decimal.Decimal `gorm:"type:numeric(14,4);not null;default:1" json:"exchangeRate"`

	Status      InvoiceStatus `gorm:"type:text;not null;default:'PENDING';index:ix_invoices_status" json:"status"`
	IssueDate   time.Time     `gorm:"not null" json:"issueDate"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	Description string        `gorm:"type:text" json:"description"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Invoice <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Invoice) TableName() string { return "invoices" }
