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

type BudgetItemService interface {
	Create(ctx context.Context, in CreateBudgetItemInput) (*model.BudgetItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error)
	List(ctx context.Context, projectID *uuid.UUID, category string) ([]model.BudgetItem, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBudgetItemInput) (*model.BudgetItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type budgetItemService struct {
	r repo.BudgetItemRepo
}

func NewBudgetItemService(r repo.BudgetItemRepo) BudgetItemService {
	return &budgetItemService{r: r}
}

type CreateBudgetItemInput struct {
	ProjectID   uuid.UUID
	Category    string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Currency    string
	CreatedByID *uuid.UUID
}

type UpdateBudgetItemInput struct {
	Category    *string
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	Currency    *string
}

func (s *budgetItemService) Create(ctx context.Context, in CreateBudgetItemInput) (*model.BudgetItem, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.Category == "":
		return nil, validationf("category is required")
	case in.Description == "":
		return nil, validationf("description is required")
	case in.Quantity.IsZero():
		return nil, validationf("quantity is required")
	}

	b := model.BudgetItem{
		ProjectID:   in.ProjectID,
		Category:    in.Category,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalPrice:  in.Quantity.Mul(in.UnitPrice),
		Currency:    in.Currency,
		CreatedByID: in.CreatedByID,
	}
	if b.Currency == "" {
		b.Currency = "HNL"
	}

	if err := s.r.Create(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *budgetItemService) Get(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error) {
	b, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *budgetItemService) List(ctx context.Context, projectID *uuid.UUID, category string) ([]model.BudgetItem, error) {
	return s.r.List(ctx, projectID, category)
}

func (s *budgetItemService) Update(ctx context.Context, id uuid.UUID, in UpdateBudgetItemInput) (*model.BudgetItem, error) {
	fields := map[string]interface{}{}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Currency != nil {
		fields["currency"] = *in.Currency
	}

	// TotalPrice tracks Quantity*UnitPrice whenever either factor changes.
	if in.Quantity != nil || in.UnitPrice != nil {
		current, err := s.r.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		qty := current.Quantity
		price := current.UnitPrice
		if in.Quantity != nil {
			qty = *in.Quantity
			fields["quantity"] = qty
		}
		if in.UnitPrice != nil {
			price = *in.UnitPrice
			fields["unit_price"] = price
		}
		fields["total_price"] = qty.Mul(price)
	}

	b, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *budgetItemService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
