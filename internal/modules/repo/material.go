package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type MaterialRepo interface {
	Create(ctx context.Context, m *model.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	GetByCode(ctx context.Context, code string) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepo(db *gorm.DB) MaterialRepo {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).First(&m, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var items []model.Material
	return items, r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
}

func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Material{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
