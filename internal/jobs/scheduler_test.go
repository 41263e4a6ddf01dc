package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) List(ctx context.Context, f repo.InvoiceFilter) ([]model.Invoice, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Invoice, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewScheduler_DefaultSchedule(t *testing.T) {
	cfg := &config.Config{}
	s, err := NewScheduler(cfg, new(MockInvoiceRepo), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cron.OverdueSchedule = "not a cron expression"

	_, err := NewScheduler(cfg, new(MockInvoiceRepo), zap.NewNop())
	require.Error(t, err)
}

func TestScheduler_SweepOverdue(t *testing.T) {
	mockRepo := new(MockInvoiceRepo)
	mockRepo.On("MarkOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	cfg := &config.Config{}
	s, err := NewScheduler(cfg, mockRepo, zap.NewNop())
	require.NoError(t, err)

	s.sweepOverdue()

	mockRepo.AssertNumberOfCalls(t, "MarkOverdue", 1)
}

func TestScheduler_SweepOverdueRepoError(t *testing.T) {
	mockRepo := new(MockInvoiceRepo)
	mockRepo.On("MarkOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("connection refused"))

	cfg := &config.Config{}
	s, err := NewScheduler(cfg, mockRepo, zap.NewNop())
	require.NoError(t, err)

	// Errors are logged, not propagated; the sweep must not panic.
	assert.NotPanics(t, func() { s.sweepOverdue() })
}
