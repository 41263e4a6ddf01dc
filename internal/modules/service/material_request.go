package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
)

type MaterialRequestService interface {
	Create(ctx context.Context, in CreateMaterialRequestInput) (*model.MaterialRequest, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.MaterialRequest, error)
}

type materialRequestService struct {
	r repo.MaterialRequestRepo
}

func NewMaterialRequestService(r repo.MaterialRequestRepo) MaterialRequestService {
	return &materialRequestService{r: r}
}

type CreateMaterialRequestInput struct {
	ProjectID uuid.UUID
	Items     model.MaterialRequestItems
	Notes     string
	// Always the session user; request bodies cannot override it.
	RequestedByID uuid.UUID
}

func (s *materialRequestService) Create(ctx context.Context, in CreateMaterialRequestInput) (*model.MaterialRequest, error) {
	switch {
	case in.ProjectID == uuid.Nil:
		return nil, validationf("projectId is required")
	case len(in.Items) == 0:
		return nil, validationf("items are required")
	case in.RequestedByID == uuid.Nil:
		return nil, validationf("requesting user is required")
	}
	for _, it := range in.Items {
		if it.MaterialID == uuid.Nil {
			return nil, validationf("every item needs a materialId")
		}
		if it.Quantity.IsZero() || it.Quantity.IsNegative() {
			return nil, validationf("every item needs a positive quantity")
		}
	}

	mr := model.MaterialRequest{
		ProjectID:     in.ProjectID,
		Items:         in.Items,
		Status:        model.MaterialRequestPending,
		Notes:         in.Notes,
		RequestedByID: in.RequestedByID,
	}
	if err := s.r.Create(ctx, &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

func (s *materialRequestService) List(ctx context.Context, projectID *uuid.UUID) ([]model.MaterialRequest, error) {
	return s.r.List(ctx, projectID)
}
