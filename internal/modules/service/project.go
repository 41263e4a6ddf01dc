package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, status string) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	r repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

type CreateProjectInput struct {
	Name            string
	Code            *string
	Status          model.ProjectStatus
	EstimatedBudget decimal.Decimal
	Currency        string
	ExchangeRate    decimal.Decimal
	Details         datatypes.JSONMap
	CreatedByID     *uuid.UUID
}

type UpdateProjectInput struct {
	Name            *string
	Code            *string
	Status          *model.ProjectStatus
	EstimatedBudget *decimal.Decimal
	Currency        *string
	ExchangeRate    *decimal.Decimal
	Details         datatypes.JSONMap
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if in.Name == "" {
		return nil, validationf("name is required")
	}

	if in.Code != nil && *in.Code != "" {
		_, err := s.r.GetByCode(ctx, *in.Code)
		if err == nil {
			return nil, validationf("el código de proyecto %q ya está en uso", *in.Code)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	p := model.Project{
		Name:            in.Name,
		Status:          in.Status,
		EstimatedBudget: in.EstimatedBudget,
		Currency:        in.Currency,
		ExchangeRate:    in.ExchangeRate,
		Details:         in.Details,
		CreatedByID:     in.CreatedByID,
	}
	if in.Code != nil && *in.Code != "" {
		p.Code = in.Code
	}
	if p.Status == "" {
		p.Status = model.ProjectActive
	}
	if p.Currency == "" {
		p.Currency = "HNL"
	}
	if p.ExchangeRate.IsZero() {
		p.ExchangeRate = decimal.NewFromInt(1)
	}

	if err := s.r.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *projectService) List(ctx context.Context, status string) ([]model.Project, error) {
	return s.r.List(ctx, status)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, validationf("name cannot be empty")
		}
		fields["name"] = *in.Name
	}
	if in.Code != nil {
		if *in.Code == "" {
			// An empty code clears it, same as omitting it on create.
			fields["code"] = nil
		} else {
			existing, err := s.r.GetByCode(ctx, *in.Code)
			if err == nil && existing.ID != id {
				return nil, validationf("el código de proyecto %q ya está en uso", *in.Code)
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			fields["code"] = *in.Code
		}
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.EstimatedBudget != nil {
		fields["estimated_budget"] = *in.EstimatedBudget
	}
	if in.Currency != nil {
		fields["currency"] = *in.Currency
	}
	if in.ExchangeRate != nil {
		fields["exchange_rate"] = *in.ExchangeRate
	}
	if in.Details != nil {
		fields["details"] = in.Details
	}

	p, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
