package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type MaterialRequestRepo interface {
	Create(ctx context.Context, mr *model.MaterialRequest) error
	List(ctx context.Context, projectID *uuid.UUID) ([]model.MaterialRequest, error)
}

type materialRequestRepo struct{ db *gorm.DB }

func NewMaterialRequestRepo(db *gorm.DB) MaterialRequestRepo {
	return &materialRequestRepo{db: db}
}

func (r *materialRequestRepo) Create(ctx context.Context, mr *model.MaterialRequest) error {
	return r.db.WithContext(ctx).Create(mr).Error
}

func (r *materialRequestRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.MaterialRequest, error) {
	q := r.db.WithContext(ctx).
		Preload("Project").
		Preload("RequestedBy")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.MaterialRequest
	return items, q.Order("created_at DESC").Find(&items).Error
}
