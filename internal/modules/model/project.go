package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

type Project struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:text;not null" json:"name"`
	// Optional external project code, unique across projects when present.
	Code   *string       `gorm:"type:text;uniqueIndex:uq_projects_code" json:"code,omitempty"`
	Status ProjectStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`

	EstimatedBudget decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"estimatedBudget"`
	Currency        string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`
	ExchangeRate    decimal.Decimal `gorm:"type:numeric(14,4);not null;default:1" json:"exchangeRate"`

	// Free-form client/location metadata.
	Details datatypes.JSONMap `gorm:"type:jsonb" json:"details,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid;index" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Project <-> children
	BudgetItems      []BudgetItem      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Expenses         []Expense         `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Invoices         []Invoice         `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Tasks            []Task            `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	ProjectMaterials []ProjectMaterial `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	PurchaseOrders   []PurchaseOrder   `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Project) TableName() string { return "projects" }
