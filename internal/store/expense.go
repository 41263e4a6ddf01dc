package store

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExpenseStore mirrors /api/v1/expenses.
type ExpenseStore struct {
	client *Client
	policy DeletePolicy

	mu    sync.RWMutex
	items []model.Expense
}

func NewExpenseStore(client *Client, policy DeletePolicy) *ExpenseStore {
	return &ExpenseStore{client: client, policy: policy}
}

// Fetch refreshes the cached list from the server.
func (s *ExpenseStore) Fetch(ctx context.Context, projectID *uuid.UUID) error {
	path := "/api/v1/expenses"
	if projectID != nil {
		path += "?projectId=" + url.QueryEscape(projectID.String())
	}

	var items []model.Expense
	if err := s.client.get(ctx, path, &items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// List returns a copy of the cached expenses.
func (s *ExpenseStore) List() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Add creates the expense server-side and prepends it to the cache.
func (s *ExpenseStore) Add(ctx context.Context, in any) (*model.Expense, error) {
	var created model.Expense
	if err := s.client.post(ctx, "/api/v1/expenses", in, &created); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]model.Expense{created}, s.items...)
	s.mu.Unlock()
	return &created, nil
}

// Update applies a partial update server-side and merges the result.
func (s *ExpenseStore) Update(ctx context.Context, id uuid.UUID, in any) (*model.Expense, error) {
	var updated model.Expense
	if err := s.client.put(ctx, "/api/v1/expenses/"+id.String(), in, &updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return &updated, nil
}

// Remove deletes the expense according to the store's delete policy.
func (s *ExpenseStore) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.client.delete(ctx, "/api/v1/expenses/"+id.String())
	if err != nil {
		if s.policy == DeleteRollback {
			return err
		}
		s.client.Logger.Warn("expense delete failed, removing locally anyway",
			zap.String("id", id.String()),
			zap.Error(err))
	}

	s.mu.Lock()
	s.items = removeByID(s.items, func(e model.Expense) uuid.UUID { return e.ID }, id)
	s.mu.Unlock()
	return nil
}

// TotalByProject sums cached expense amounts for one project.
func (s *ExpenseStore) TotalByProject(projectID uuid.UUID) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, e := range s.items {
		if e.ProjectID == projectID {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// GroupByCategory sums cached expense amounts per category.
func (s *ExpenseStore) GroupByCategory() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]decimal.Decimal)
	for _, e := range s.items {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}

// FilterByDateRange returns cached expenses dated within [from, to].
func (s *ExpenseStore) FilterByDateRange(from, to time.Time) []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Expense
	for _, e := range s.items {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out
}

func removeByID[T any](items []T, idOf func(T) uuid.UUID, id uuid.UUID) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
