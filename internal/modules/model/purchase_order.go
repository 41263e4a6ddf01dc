package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderDraft    PurchaseOrderStatus = "DRAFT"
	PurchaseOrderSent     PurchaseOrderStatus = "SENT"
	PurchaseOrderReceived PurchaseOrderStatus = "RECEIVED"
)

type PurchaseOrder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_purchase_orders_project_id" json:"projectId"`

	OrderNumber string    `gorm:"type:text;not null" json:"orderNumber"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null" json:"supplierId"`

	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Currency string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`

	// Committed orders count against the project budget forecast.
	IsCommitted bool                `gorm:"not null;default:false" json:"isCommitted"`
	Status      PurchaseOrderStatus `gorm:"type:text;not null;default:'DRAFT'" json:"status"`
	Notes       string              `gorm:"type:text" json:"notes"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// PurchaseOrder <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`

	// PurchaseOrder <-> Contact (supplier)
	Supplier *Contact `gorm:"foreignKey:SupplierID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"supplier,omitempty"`
}

func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	return nil
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }
