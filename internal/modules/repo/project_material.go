package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"gorm.io/gorm"
)

// ErrAlreadyAssigned reports a second assignment of the same material to the
// same project.
var ErrAlreadyAssigned = errors.New("material already assigned to project")

type ProjectMaterialRepo interface {
	// CreateWithBudgetIncrement inserts the assignment and adds
	// Quantity*UnitPrice to the project's estimated budget in one transaction.
	// The increment runs as a single UPDATE expression so concurrent
	// assignments to the same project never lose an update.
	CreateWithBudgetIncrement(ctx context.Context, pm *model.ProjectMaterial) error
	List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMaterial, error)
}

type projectMaterialRepo struct{ db *gorm.DB }

func NewProjectMaterialRepo(db *gorm.DB) ProjectMaterialRepo {
	return &projectMaterialRepo{db: db}
}

func (r *projectMaterialRepo) CreateWithBudgetIncrement(ctx context.Context, pm *model.ProjectMaterial) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.ProjectMaterial{}).
			Where("project_id = ? AND material_id = ?", pm.ProjectID, pm.MaterialID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyAssigned
		}

		if err := tx.Create(pm).Error; err != nil {
			return err
		}

		delta := pm.Quantity.Mul(pm.UnitPrice)
		res := tx.Model(&model.Project{}).
			Where("id = ?", pm.ProjectID).
			Update("estimated_budget", gorm.Expr("estimated_budget + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *projectMaterialRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMaterial, error) {
	var items []model.ProjectMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Preload("Project").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
