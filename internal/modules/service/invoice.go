package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceService interface {
	Create(ctx context.Context, in CreateInvoiceInput) (*model.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, f repo.InvoiceFilter) ([]model.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInvoiceInput) (*model.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	r repo.InvoiceRepo
}

func NewInvoiceService(r repo.InvoiceRepo) InvoiceService {
	return &invoiceService{r: r}
}

type CreateInvoiceInput struct {
	ProjectID     uuid.UUID
	InvoiceNumber string
	Supplier      string
	Amount        decimal.Decimal
	Currency      string
	ExchangeRate  decimal.Decimal
	Status        model.InvoiceStatus
	IssueDate     time.Time
	DueDate       *time.Time
	Description   string
	CreatedByID   *uuid.UUID
}

type UpdateInvoiceInput struct {
	Supplier    *string
	Amount      *decimal.Decimal
	Currency    *string
	Status      *model.InvoiceStatus
	DueDate     *time.Time
	Description *string
}

func (s *invoiceService) Create(ctx context.Context, in CreateInvoiceInput) (*model.Invoice, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.InvoiceNumber == "":
		return nil, validationf("invoiceNumber is required")
	case in.Supplier == "":
		return nil, validationf("supplier is required")
	case in.Amount.IsZero():
		return nil, validationf("amount is required")
	}

	_, err := s.r.GetByNumber(ctx, in.InvoiceNumber)
	if err == nil {
		return nil, validationf("el número de factura %q ya existe", in.InvoiceNumber)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv := model.Invoice{
		ProjectID:     in.ProjectID,
		InvoiceNumber: in.InvoiceNumber,
		Supplier:      in.Supplier,
		Amount:        in.Amount,
		Currency:      in.Currency,
		ExchangeRate:  in.ExchangeRate,
		Status:        in.Status,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Description:   in.Description,
		CreatedByID:   in.CreatedByID,
	}
	if inv.Currency == "" {
		inv.Currency = "HNL"
	}
	if inv.ExchangeRate.IsZero() {
		inv.ExchangeRate = decimal.NewFromInt(1)
	}
	if inv.Status == "" {
		inv.Status = model.InvoicePending
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = time.Now()
	}

	if err := s.r.Create(ctx, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return inv, err
}

func (s *invoiceService) List(ctx context.Context, f repo.InvoiceFilter) ([]model.Invoice, error) {
	return s.r.List(ctx, f)
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, in UpdateInvoiceInput) (*model.Invoice, error) {
	fields := map[string]interface{}{}
	if in.Supplier != nil {
		fields["supplier"] = *in.Supplier
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.Currency != nil {
		fields["currency"] = *in.Currency
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}

	inv, err := s.r.Update(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return inv, err
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
