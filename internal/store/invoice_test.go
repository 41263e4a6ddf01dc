package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(projectID uuid.UUID, number string, status model.InvoiceStatus, due *time.Time) model.Invoice {
	return model.Invoice{
		ID:            uuid.New(),
		ProjectID:     projectID,
		InvoiceNumber: number,
		Amount:        decimal.NewFromInt(100),
		Status:        status,
		DueDate:       due,
	}
}

func TestInvoiceStore_FetchPassesFilters(t *testing.T) {
	projectID := uuid.New()

	var gotProject, gotStatus string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/invoices", r.URL.Path)
		gotProject = r.URL.Query().Get("projectId")
		gotStatus = r.URL.Query().Get("status")
		writeJSON(t, w, http.StatusOK, []model.Invoice{})
	}))

	s := NewInvoiceStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), &projectID, "PENDING"))

	assert.Equal(t, projectID.String(), gotProject)
	assert.Equal(t, "PENDING", gotStatus)
}

func TestInvoiceStore_Overdue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)
	projectID := uuid.New()

	overdue := testInvoice(projectID, "F-001", model.InvoicePending, &past)
	served := []model.Invoice{
		overdue,
		testInvoice(projectID, "F-002", model.InvoicePending, &future),
		testInvoice(projectID, "F-003", model.InvoicePaid, &past),
		testInvoice(projectID, "F-004", model.InvoicePending, nil),
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, served)
	}))

	s := NewInvoiceStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil, ""))

	got := s.Overdue(now)
	require.Len(t, got, 1, "only pending invoices past their due date count")
	assert.Equal(t, overdue.ID, got[0].ID)
}

func TestInvoiceStore_RemovePolicies(t *testing.T) {
	projectID := uuid.New()
	inv := testInvoice(projectID, "F-010", model.InvoicePending, nil)

	failingDelete := func() *Client {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				writeJSON(t, w, http.StatusOK, []model.Invoice{inv})
				return
			}
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "db unavailable"})
		}))
		return client
	}

	t.Run("rollback", func(t *testing.T) {
		s := NewInvoiceStore(failingDelete(), DeleteRollback)
		require.NoError(t, s.Fetch(context.Background(), nil, ""))

		require.Error(t, s.Remove(context.Background(), inv.ID))
		assert.Len(t, s.List(), 1)
	})

	t.Run("optimistic", func(t *testing.T) {
		s := NewInvoiceStore(failingDelete(), DeleteOptimistic)
		require.NoError(t, s.Fetch(context.Background(), nil, ""))

		require.NoError(t, s.Remove(context.Background(), inv.ID))
		assert.Empty(t, s.List())
	})
}

func TestInvoiceStore_TotalByProject(t *testing.T) {
	projA := uuid.New()
	projB := uuid.New()

	a1 := testInvoice(projA, "F-020", model.InvoicePending, nil)
	a1.Amount = decimal.NewFromInt(300)
	a2 := testInvoice(projA, "F-021", model.InvoicePaid, nil)
	a2.Amount = decimal.NewFromInt(200)
	b1 := testInvoice(projB, "F-022", model.InvoicePending, nil)
	b1.Amount = decimal.NewFromInt(50)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []model.Invoice{a1, a2, b1})
	}))

	s := NewInvoiceStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil, ""))

	assert.True(t, s.TotalByProject(projA).Equal(decimal.NewFromInt(500)))
	assert.True(t, s.TotalByProject(projB).Equal(decimal.NewFromInt(50)))
}
