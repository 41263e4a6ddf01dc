package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProjectMaterialService interface {
	Assign(ctx context.Context, in AssignMaterialInput) (*model.ProjectMaterial, error)
	List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMaterial, error)
}

type projectMaterialService struct {
	r         repo.ProjectMaterialRepo
	materials repo.MaterialRepo
}

func NewProjectMaterialService(r repo.ProjectMaterialRepo, materials repo.MaterialRepo) ProjectMaterialService {
	return &projectMaterialService{r: r, materials: materials}
}

type AssignMaterialInput struct {
	ProjectID  uuid.UUID
	MaterialID uuid.UUID
	Quantity   decimal.Decimal
	// Optional overrides; the material catalog supplies the defaults.
	UnitPrice *decimal.Decimal
	Currency  string
}

func (s *projectMaterialService) Assign(ctx context.Context, in AssignMaterialInput) (*model.ProjectMaterial, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.MaterialID == uuid.Nil:
		return nil, validationf("materialId is required")
	case in.Quantity.IsZero() || in.Quantity.IsNegative():
		return nil, validationf("quantity must be positive")
	}

	mat, err := s.materials.GetByID(ctx, in.MaterialID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, validationf("material no encontrado")
	}
	if err != nil {
		return nil, err
	}

	pm := model.ProjectMaterial{
		ProjectID:  in.ProjectID,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		UnitPrice:  mat.BasePrice,
		Currency:   mat.Currency,
	}
	if in.UnitPrice != nil {
		pm.UnitPrice = *in.UnitPrice
	}
	if in.Currency != "" {
		pm.Currency = in.Currency
	}

	err = s.r.CreateWithBudgetIncrement(ctx, &pm)
	if errors.Is(err, repo.ErrAlreadyAssigned) {
		return nil, validationf("el material ya está asignado al proyecto")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, validationf("proyecto no encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (s *projectMaterialService) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMaterial, error) {
	if projectID == uuid.Nil {
		return nil, validationf("projectId is required")
	}
	return s.r.List(ctx, projectID)
}
