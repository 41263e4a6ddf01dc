package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ExpenseService interface {
	Create(ctx context.Context, in CreateExpenseInput) (*model.Expense, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	List(ctx context.Context, f repo.ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateExpenseInput) (*model.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseService struct {
	r      repo.ExpenseRepo
	events *Events
	log    *zap.Logger
}

func NewExpenseService(r repo.ExpenseRepo, events *Events, log *zap.Logger) ExpenseService {
	return &expenseService{r: r, events: events, log: log}
}

type CreateExpenseInput struct {
	ProjectID     uuid.UUID
	BudgetItemID  *uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Currency      string
	ExchangeRate  decimal.Decimal
	Category      string
	Date          time.Time
	InvoiceNumber *string
	Supplier      *string
	CreatedByID   uuid.UUID
}

type UpdateExpenseInput struct {
	BudgetItemID  *uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Currency      *string
	ExchangeRate  *decimal.Decimal
	Category      *string
	Date          *time.Time
	InvoiceNumber *string
	Supplier      *string
}

func (s *expenseService) Create(ctx context.Context, in CreateExpenseInput) (*model.Expense, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.Description == "":
		return nil, validationf("description is required")
	case in.Amount.IsZero():
		return nil, validationf("amount is required")
	case in.Category == "":
		return nil, validationf("category is required")
	case in.Date.IsZero():
		return nil, validationf("date is required")
	case in.CreatedByID == uuid.Nil:
		return nil, validationf("createdById is required")
	}

	e := model.Expense{
		ProjectID:     in.ProjectID,
		BudgetItemID:  in.BudgetItemID,
		Description:   in.Description,
		Amount:        in.Amount,
		Currency:      in.Currency,
		ExchangeRate:  in.ExchangeRate,
		Category:      in.Category,
		Date:          in.Date,
		InvoiceNumber: in.InvoiceNumber,
		Supplier:      in.Supplier,
		CreatedByID:   in.CreatedByID,
	}
	if e.Currency == "" {
		e.Currency = "HNL"
	}
	if e.ExchangeRate.IsZero() {
		e.ExchangeRate = decimal.NewFromInt(1)
	}

	mirrored, err := s.r.CreateWithInvoice(ctx, &e)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, EventExpenseCreated, e)
	if mirrored != nil {
		s.log.Info("invoice mirrored from expense",
			zap.String("expense_id", e.ID.String()),
			zap.String("invoice_number", mirrored.InvoiceNumber))
		s.events.Publish(ctx, EventInvoiceAutoCreate, mirrored)
	}
	return &e, nil
}

func (s *expenseService) Get(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	e, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *expenseService) List(ctx context.Context, f repo.ExpenseFilter) ([]model.Expense, error) {
	return s.r.List(ctx, f)
}

func (s *expenseService) Update(ctx context.Context, id uuid.UUID, in UpdateExpenseInput) (*model.Expense, error) {
	fields := map[string]interface{}{}
	if in.BudgetItemID != nil {
		fields["budget_item_id"] = *in.BudgetItemID
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, validationf("description cannot be empty")
		}
		fields["description"] = *in.Description
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.Currency != nil {
		fields["currency"] = *in.Currency
	}
	if in.ExchangeRate != nil {
		fields["exchange_rate"] = *in.ExchangeRate
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.InvoiceNumber != nil {
		fields["invoice_number"] = *in.InvoiceNumber
	}
	if in.Supplier != nil {
		fields["supplier"] = *in.Supplier
	}

	e, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *expenseService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.DeleteWithInvoice(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err == nil {
		s.events.Publish(ctx, EventExpenseDeleted, map[string]any{"id": id})
	}
	return err
}
