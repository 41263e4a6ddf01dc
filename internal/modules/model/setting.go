package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Setting is the single global configuration row, created on demand with
// defaults the first time it is read.
type Setting struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Currency     string          `gorm:"type:text;not null;default:'HNL'" json:"currency"`
	ExchangeRate decimal.Decimal `gorm:"type:numeric(14,4);not null;default:1" json:"exchangeRate"`
	Locale       string          `gorm:"type:text;not null;default:'es-HN'" json:"locale"`

	AutoBackupEnabled bool       `gorm:"not null;default:false" json:"autoBackupEnabled"`
	BackupFrequency   string     `gorm:"type:text;not null;default:'weekly'" json:"backupFrequency"`
	LastBackupAt      *time.Time `json:"lastBackupAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Setting) TableName() string { return "settings" }
