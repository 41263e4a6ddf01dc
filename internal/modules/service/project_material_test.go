package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectMaterialRepo struct {
	mock.Mock
}

func (m *MockProjectMaterialRepo) CreateWithBudgetIncrement(ctx context.Context, pm *model.ProjectMaterial) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockProjectMaterialRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMaterial, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectMaterial), args.Error(1)
}

type MockMaterialRepo struct {
	mock.Mock
}

func (m *MockMaterialRepo) Create(ctx context.Context, mat *model.Material) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockMaterialRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialRepo) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialRepo) List(ctx context.Context) ([]model.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectMaterialService_Assign_CatalogFallback(t *testing.T) {
	materials := &MockMaterialRepo{}
	pms := &MockProjectMaterialRepo{}

	materialID := uuid.New()
	materials.On("GetByID", mock.Anything, materialID).Return(&model.Material{
		ID:        materialID,
		BasePrice: decimal.NewFromInt(10),
		Currency:  "HNL",
	}, nil)
	pms.On("CreateWithBudgetIncrement", mock.Anything, mock.MatchedBy(func(pm *model.ProjectMaterial) bool {
		return pm.UnitPrice.Equal(decimal.NewFromInt(10)) && pm.Currency == "HNL"
	})).Return(nil)

	svc := NewProjectMaterialService(pms, materials)
	got, err := svc.Assign(context.Background(), AssignMaterialInput{
		ProjectID:  uuid.New(),
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(10)))
	pms.AssertExpectations(t)
}

func TestProjectMaterialService_Assign_OverrideWins(t *testing.T) {
	materials := &MockMaterialRepo{}
	pms := &MockProjectMaterialRepo{}

	materialID := uuid.New()
	override := decimal.NewFromInt(12)
	materials.On("GetByID", mock.Anything, materialID).Return(&model.Material{
		ID:        materialID,
		BasePrice: decimal.NewFromInt(10),
		Currency:  "HNL",
	}, nil)
	pms.On("CreateWithBudgetIncrement", mock.Anything, mock.MatchedBy(func(pm *model.ProjectMaterial) bool {
		return pm.UnitPrice.Equal(override) && pm.Currency == "USD"
	})).Return(nil)

	svc := NewProjectMaterialService(pms, materials)
	_, err := svc.Assign(context.Background(), AssignMaterialInput{
		ProjectID:  uuid.New(),
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  &override,
		Currency:   "USD",
	})
	require.NoError(t, err)
	pms.AssertExpectations(t)
}

func TestProjectMaterialService_Assign_Duplicate(t *testing.T) {
	materials := &MockMaterialRepo{}
	pms := &MockProjectMaterialRepo{}

	materialID := uuid.New()
	materials.On("GetByID", mock.Anything, materialID).Return(&model.Material{ID: materialID}, nil)
	pms.On("CreateWithBudgetIncrement", mock.Anything, mock.Anything).Return(repo.ErrAlreadyAssigned)

	svc := NewProjectMaterialService(pms, materials)
	_, err := svc.Assign(context.Background(), AssignMaterialInput{
		ProjectID:  uuid.New(),
		MaterialID: materialID,
		Quantity:   decimal.NewFromInt(1),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "el material ya está asignado al proyecto", verr.Reason)
}

func TestProjectMaterialService_Assign_Validation(t *testing.T) {
	svc := NewProjectMaterialService(&MockProjectMaterialRepo{}, &MockMaterialRepo{})

	_, err := svc.Assign(context.Background(), AssignMaterialInput{
		MaterialID: uuid.New(),
		Quantity:   decimal.NewFromInt(1),
	})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Assign(context.Background(), AssignMaterialInput{
		ProjectID:  uuid.New(),
		MaterialID: uuid.New(),
		Quantity:   decimal.NewFromInt(-2),
	})
	assert.ErrorAs(t, err, &verr)
}
