package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type PurchaseOrderRepo interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.PurchaseOrder, error)
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepo {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Supplier").
		First(&po, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.PurchaseOrder, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Supplier")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.PurchaseOrder
	return items, q.Order("created_at DESC").Find(&items).Error
}
