package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactKind string

const (
	ContactSupplier      ContactKind = "SUPPLIER"
	ContactClient        ContactKind = "CLIENT"
	ContactSubcontractor ContactKind = "SUBCONTRACTOR"
)

type Contact struct {
	ID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string      `gorm:"type:text;not null" json:"name"`
	Company string      `gorm:"type:text" json:"company"`
	Email   string      `gorm:"type:text" json:"email"`
	Phone   string      `gorm:"type:text" json:"phone"`
	Kind    ContactKind `gorm:"type:text;not null;default:'SUPPLIER'" json:"kind"`
	Notes   string      `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Contact <-> PurchaseOrder
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Contact) TableName() string { return "contacts" }
