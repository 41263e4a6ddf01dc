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

// InvoiceStore mirrors /api/v1/invoices.
type InvoiceStore struct {
	client *Client
	policy DeletePolicy

	mu    sync.RWMutex
	items []model.Invoice
}

func NewInvoiceStore(client *Client, policy DeletePolicy) *InvoiceStore {
	return &InvoiceStore{client: client, policy: policy}
}

func (s *InvoiceStore) Fetch(ctx context.Context, projectID *uuid.UUID, status string) error {
	q := url.Values{}
	if projectID != nil {
		q.Set("projectId", projectID.String())
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/v1/invoices"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var items []model.Invoice
	if err := s.client.get(ctx, path, &items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *InvoiceStore) List() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.items))
	copy(out, s.items)
	return out
}

func (s *InvoiceStore) Add(ctx context.Context, in any) (*model.Invoice, error) {
	var created model.Invoice
	if err := s.client.post(ctx, "/api/v1/invoices", in, &created); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]model.Invoice{created}, s.items...)
	s.mu.Unlock()
	return &created, nil
}

func (s *InvoiceStore) Update(ctx context.Context, id uuid.UUID, in any) (*model.Invoice, error) {
	var updated model.Invoice
	if err := s.client.put(ctx, "/api/v1/invoices/"+id.String(), in, &updated); err != nil {
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

func (s *InvoiceStore) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.client.delete(ctx, "/api/v1/invoices/"+id.String())
	if err != nil {
		if s.policy == DeleteRollback {
			return err
		}
		s.client.Logger.Warn("invoice delete failed, removing locally anyway",
			zap.String("id", id.String()),
			zap.Error(err))
	}

	s.mu.Lock()
	s.items = removeByID(s.items, func(inv model.Invoice) uuid.UUID { return inv.ID }, id)
	s.mu.Unlock()
	return nil
}

// TotalByProject sums cached invoice amounts for one project.
func (s *InvoiceStore) TotalByProject(projectID uuid.UUID) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, inv := range s.items {
		if inv.ProjectID == projectID {
			total = total.Add(inv.Amount)
		}
	}
	return total
}

// Overdue returns cached invoices still pending past their due date at now.
func (s *InvoiceStore) Overdue(now time.Time) []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Invoice
	for _, inv := range s.items {
		if inv.Status == model.InvoicePending && inv.DueDate != nil && inv.DueDate.Before(now) {
			out = append(out, inv)
		}
	}
	return out
}
