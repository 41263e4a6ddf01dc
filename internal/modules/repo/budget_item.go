package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type BudgetItemRepo interface {
	Create(ctx context.Context, b *model.BudgetItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error)
	List(ctx context.Context, projectID *uuid.UUID, category string) ([]model.BudgetItem, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.BudgetItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type budgetItemRepo struct{ db *gorm.DB }

func NewBudgetItemRepo(db *gorm.DB) BudgetItemRepo {
	return &budgetItemRepo{db: db}
}

func (r *budgetItemRepo) Create(ctx context.Context, b *model.BudgetItem) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *budgetItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error) {
	var b model.BudgetItem
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("CreatedBy").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *budgetItemRepo) List(ctx context.Context, projectID *uuid.UUID, category string) ([]model.BudgetItem, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("CreatedBy")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []model.BudgetItem
	return items, q.Order("created_at DESC").Find(&items).Error
}

func (r *budgetItemRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.BudgetItem, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.WithContext(ctx).Model(&model.BudgetItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *budgetItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.BudgetItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
