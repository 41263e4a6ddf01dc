package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Material is a catalog entity; projects reference it through ProjectMaterial.
type Material struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:text;not null" json:"name"`
	Code *string   `gorm:"type:text;uniqueIndex:uq_materials_code" json:"code,omitempty"`
	Unit string    `gorm:"type:text;not null;default:'unidad'" json:"unit"`

	BasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"basePrice"`
	Currency  string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Material <-> ProjectMaterial
	ProjectMaterials []ProjectMaterial `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Material) TableName() string { return "materials" }
