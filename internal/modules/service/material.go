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

type MaterialService interface {
	Create(ctx context.Context, in CreateMaterialInput) (*model.Material, error)
	List(ctx context.Context) ([]model.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialService struct {
	r repo.MaterialRepo
}

func NewMaterialService(r repo.MaterialRepo) MaterialService {
	return &materialService{r: r}
}

type CreateMaterialInput struct {
	Name      string
	Code      *string
	Unit      string
	BasePrice decimal.Decimal
	Currency  string
}

func (s *materialService) Create(ctx context.Context, in CreateMaterialInput) (*model.Material, error) {
	if in.Name == "" {
		return nil, validationf("name is required")
	}

	if in.Code != nil && *in.Code != "" {
		_, err := s.r.GetByCode(ctx, *in.Code)
		if err == nil {
			return nil, validationf("el código de material %q ya está en uso", *in.Code)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	m := model.Material{
		Name:      in.Name,
		Unit:      in.Unit,
		BasePrice: in.BasePrice,
		Currency:  in.Currency,
	}
	if in.Code != nil && *in.Code != "" {
		m.Code = in.Code
	}
	if m.Unit == "" {
		m.Unit = "unidad"
	}
	if m.Currency == "" {
		m.Currency = "HNL"
	}

	if err := s.r.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *materialService) List(ctx context.Context) ([]model.Material, error) {
	return s.r.List(ctx)
}

func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
