package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) CreateWithInvoice(ctx context.Context, e *model.Expense) (*model.Invoice, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) List(ctx context.Context, f repo.ExpenseFilter) ([]model.Expense, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Expense, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepo) DeleteWithInvoice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validExpenseInput() CreateExpenseInput {
	return CreateExpenseInput{
		ProjectID:   uuid.New(),
		Description: "Cemento",
		Amount:      decimal.NewFromInt(500),
		Category:    "materiales",
		Date:        time.Now(),
		CreatedByID: uuid.New(),
	}
}

func TestExpenseService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateExpenseInput)
	}{
		{"missing projectId", func(in *CreateExpenseInput) { in.ProjectID = uuid.Nil }},
		{"missing description", func(in *CreateExpenseInput) { in.Description = "" }},
		{"missing amount", func(in *CreateExpenseInput) { in.Amount = decimal.Zero }},
		{"missing category", func(in *CreateExpenseInput) { in.Category = "" }},
		{"missing date", func(in *CreateExpenseInput) { in.Date = time.Time{} }},
		{"missing createdById", func(in *CreateExpenseInput) { in.CreatedByID = uuid.Nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockExpenseRepo{}
			svc := NewExpenseService(r, NewEvents(nil, zap.NewNop()), zap.NewNop())

			in := validExpenseInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			r.AssertNotCalled(t, "CreateWithInvoice", mock.Anything, mock.Anything)
		})
	}
}

func TestExpenseService_Create_DefaultsCurrency(t *testing.T) {
	r := &MockExpenseRepo{}
	r.On("CreateWithInvoice", mock.Anything, mock.MatchedBy(func(e *model.Expense) bool {
		return e.Currency == "HNL" && e.ExchangeRate.Equal(decimal.NewFromInt(1))
	})).Return(nil, nil)

	svc := NewExpenseService(r, NewEvents(nil, zap.NewNop()), zap.NewNop())
	got, err := svc.Create(context.Background(), validExpenseInput())
	require.NoError(t, err)
	assert.Equal(t, "HNL", got.Currency)
	r.AssertExpectations(t)
}

func TestExpenseService_Delete_NotFound(t *testing.T) {
	r := &MockExpenseRepo{}
	id := uuid.New()
	r.On("DeleteWithInvoice", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	svc := NewExpenseService(r, NewEvents(nil, zap.NewNop()), zap.NewNop())
	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	r.AssertExpectations(t)
}

func TestExpenseService_Update_MapsFields(t *testing.T) {
	r := &MockExpenseRepo{}
	id := uuid.New()
	desc := "nuevo"
	amount := decimal.NewFromInt(750)

	r.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
		if len(fields) != 2 {
			return false
		}
		got, ok := fields["amount"].(decimal.Decimal)
		return fields["description"] == "nuevo" && ok && got.Equal(amount)
	})).Return(&model.Expense{ID: id, Description: desc, Amount: amount}, nil)

	svc := NewExpenseService(r, NewEvents(nil, zap.NewNop()), zap.NewNop())
	got, err := svc.Update(context.Background(), id, UpdateExpenseInput{
		Description: &desc,
		Amount:      &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", got.Description)
	r.AssertExpectations(t)
}
