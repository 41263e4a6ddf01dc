package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaterialRequestStatus string

const (
	MaterialRequestPending  MaterialRequestStatus = "PENDING"
	MaterialRequestApproved MaterialRequestStatus = "APPROVED"
	MaterialRequestRejected MaterialRequestStatus = "REJECTED"
)

// MaterialRequestItem is one requested line inside a MaterialRequest.
type MaterialRequestItem struct {
	MaterialID uuid.UUID       `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Note       string          `json:"note,omitempty"`
}

// MaterialRequestItems is stored as a JSONB column.
type MaterialRequestItems []MaterialRequestItem

func (it *MaterialRequestItems) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, it)
	case string:
		return json.Unmarshal([]byte(v), it)
	default:
		return errors.New("failed to unmarshal JSONB value")
	}
}

func (it MaterialRequestItems) Value() (driver.Value, error) {
	return json.Marshal(it)
}

type MaterialRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_material_requests_project_id" json:"projectId"`

	Items  MaterialRequestItems  `gorm:"type:jsonb;not null" json:"items"`
	Status MaterialRequestStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	Notes  string                `gorm:"type:text" json:"notes"`

	// Attribution comes from the session user, never from the request body.
	RequestedByID uuid.UUID `gorm:"type:uuid;not null" json:"requestedById"`
	RequestedBy   *User     `gorm:"foreignKey:RequestedByID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"requestedBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// MaterialRequest <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (mr *MaterialRequest) BeforeCreate(tx *gorm.DB) error {
	if mr.ID == uuid.Nil {
		mr.ID = uuid.New()
	}
	return nil
}

func (MaterialRequest) TableName() string { return "material_requests" }
