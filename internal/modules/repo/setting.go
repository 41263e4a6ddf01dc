package repo

import (
	"context"
	"errors"

	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SettingRepo interface {
	// GetOrCreate returns the single global settings row, creating it with
	// defaults when none exists yet.
	GetOrCreate(ctx context.Context) (*model.Setting, error)
	Update(ctx context.Context, fields map[string]interface{}) (*model.Setting, error)
}

type settingRepo struct{ db *gorm.DB }

func NewSettingRepo(db *gorm.DB) SettingRepo {
	return &settingRepo{db: db}
}

func (r *settingRepo) GetOrCreate(ctx context.Context) (*model.Setting, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = model.Setting{
		Currency:        "HNL",
		ExchangeRate:    decimal.NewFromInt(1),
		Locale:          "es-HN",
		BackupFrequency: "weekly",
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		// Another request may have created the row concurrently.
		var existing model.Setting
		if getErr := r.db.WithContext(ctx).Order("created_at ASC").First(&existing).Error; getErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingRepo) Update(ctx context.Context, fields map[string]interface{}) (*model.Setting, error) {
	s, err := r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(s).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetOrCreate(ctx)
}
