package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByCode(ctx context.Context, code string) (*model.Project, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, status string) ([]model.Project, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_Create_DuplicateCode(t *testing.T) {
	r := &MockProjectRepo{}
	code := "PRX-001"
	r.On("GetByCode", mock.Anything, code).Return(&model.Project{ID: uuid.New()}, nil)

	svc := NewProjectService(r)
	_, err := svc.Create(context.Background(), CreateProjectInput{Name: "Torre Norte", Code: &code})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "PRX-001")
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Create_Defaults(t *testing.T) {
	r := &MockProjectRepo{}
	r.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.Status == model.ProjectActive &&
			p.Currency == "HNL" &&
			p.ExchangeRate.Equal(decimal.NewFromInt(1)) &&
			p.Code == nil
	})).Return(nil)

	svc := NewProjectService(r)
	got, err := svc.Create(context.Background(), CreateProjectInput{Name: "Torre Norte"})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectActive, got.Status)
	r.AssertExpectations(t)
}

func TestProjectService_Update_CodeCollision(t *testing.T) {
	r := &MockProjectRepo{}
	id := uuid.New()
	code := "PRX-002"
	r.On("GetByCode", mock.Anything, code).Return(&model.Project{ID: uuid.New()}, nil)

	svc := NewProjectService(r)
	_, err := svc.Update(context.Background(), id, UpdateProjectInput{Code: &code})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectService_Update_SameProjectKeepsCode(t *testing.T) {
	r := &MockProjectRepo{}
	id := uuid.New()
	code := "PRX-003"
	r.On("GetByCode", mock.Anything, code).Return(&model.Project{ID: id}, nil)
	r.On("Update", mock.Anything, id, mock.Anything).Return(&model.Project{ID: id, Code: &code}, nil)

	svc := NewProjectService(r)
	got, err := svc.Update(context.Background(), id, UpdateProjectInput{Code: &code})
	require.NoError(t, err)
	assert.Equal(t, code, *got.Code)
	r.AssertExpectations(t)
}

func TestProjectService_Update_EmptyCodeClears(t *testing.T) {
	r := &MockProjectRepo{}
	id := uuid.New()
	empty := ""
	r.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
		v, ok := fields["code"]
		return ok && v == nil
	})).Return(&model.Project{ID: id}, nil)

	svc := NewProjectService(r)
	got, err := svc.Update(context.Background(), id, UpdateProjectInput{Code: &empty})
	require.NoError(t, err)
	assert.Nil(t, got.Code)
	r.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	r.AssertExpectations(t)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	r := &MockProjectRepo{}
	id := uuid.New()
	r.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProjectService(r)
	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
