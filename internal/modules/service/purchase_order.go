package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
)

type PurchaseOrderService interface {
	Create(ctx context.Context, in CreatePurchaseOrderInput) (*model.PurchaseOrder, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.PurchaseOrder, error)
}

type purchaseOrderService struct {
	r repo.PurchaseOrderRepo
}

func NewPurchaseOrderService(r repo.PurchaseOrderRepo) PurchaseOrderService {
	return &purchaseOrderService{r: r}
}

type CreatePurchaseOrderInput struct {
	ProjectID   uuid.UUID
	OrderNumber string
	SupplierID  uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	IsCommitted bool
	Notes       string
	CreatedByID *uuid.UUID
}

func (s *purchaseOrderService) Create(ctx context.Context, in CreatePurchaseOrderInput) (*model.PurchaseOrder, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case in.OrderNumber == "":
		return nil, validationf("orderNumber is required")
	case in.SupplierID == uuid.Nil:
		return nil, validationf("supplierId is required")
	case in.Amount.IsZero():
		return nil, validationf("amount is required")
	}

	po := model.PurchaseOrder{
		ProjectID:   in.ProjectID,
		OrderNumber: in.OrderNumber,
		SupplierID:  in.SupplierID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		IsCommitted: in.IsCommitted,
		Status:      model.PurchaseOrderDraft,
		Notes:       in.Notes,
		CreatedByID: in.CreatedByID,
	}
	if po.Currency == "" {
		po.Currency = "HNL"
	}

	if err := s.r.Create(ctx, &po); err != nil {
		return nil, err
	}
	return &po, nil
}

func (s *purchaseOrderService) List(ctx context.Context, projectID *uuid.UUID) ([]model.PurchaseOrder, error) {
	return s.r.List(ctx, projectID)
}
