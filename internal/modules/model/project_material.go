package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectMaterial assigns a catalog material to a project. Creating one adds
// Quantity*UnitPrice to the owning project's estimated budget.
type ProjectMaterial struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_materials_pair,priority:1" json:"projectId"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_project_materials_pair,priority:2" json:"materialId"`

	Quantity  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unitPrice"`
	Currency  string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// ProjectMaterial <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`

	// ProjectMaterial <-> Material
	Material *Material `gorm:"foreignKey:MaterialID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"material,omitempty"`
}

func (pm *ProjectMaterial) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	return nil
}

func (ProjectMaterial) TableName() string { return "project_materials" }
