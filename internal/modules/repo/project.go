package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetByCode(ctx context.Context, code string) (*model.Project, error)
	List(ctx context.Context, status string) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetByCode(ctx context.Context, code string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, status string) ([]model.Project, error) {
	q := r.db.WithContext(ctx).Preload("CreatedBy")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []model.Project
	return items, q.Order("created_at DESC").Find(&items).Error
}

func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	if len(fields) == 0 {
		fields = map[string]interface{}{"updated_at": time.Now()}
	}
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
