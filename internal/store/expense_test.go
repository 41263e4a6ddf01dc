package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop()), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	b, err := sonic.Marshal(v)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func testExpense(projectID uuid.UUID, amount int64, category string, date time.Time) model.Expense {
	return model.Expense{
		ID:        uuid.New(),
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Date:      date,
	}
}

func TestExpenseStore_FetchFiltersByProject(t *testing.T) {
	projectID := uuid.New()
	served := []model.Expense{
		testExpense(projectID, 100, "MATERIALS", time.Now()),
		testExpense(projectID, 250, "LABOR", time.Now()),
	}

	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/expenses", r.URL.Path)
		gotQuery = r.URL.Query().Get("projectId")
		writeJSON(t, w, http.StatusOK, served)
	}))

	s := NewExpenseStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), &projectID))

	assert.Equal(t, projectID.String(), gotQuery)
	assert.Len(t, s.List(), 2)
}

func TestExpenseStore_AddPrepends(t *testing.T) {
	projectID := uuid.New()
	existing := testExpense(projectID, 100, "MATERIALS", time.Now())
	created := testExpense(projectID, 500, "EQUIPMENT", time.Now())

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, []model.Expense{existing})
		case http.MethodPost:
			writeJSON(t, w, http.StatusCreated, created)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	s := NewExpenseStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil))

	out, err := s.Add(context.Background(), map[string]any{"amount": "500"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID, "new expense goes first")
}

func TestExpenseStore_RemoveRollbackKeepsCache(t *testing.T) {
	projectID := uuid.New()
	e := testExpense(projectID, 100, "MATERIALS", time.Now())

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, []model.Expense{e})
			return
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "expense not found"})
	}))

	s := NewExpenseStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil))

	err := s.Remove(context.Background(), e.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expense not found")
	assert.Len(t, s.List(), 1, "rollback policy keeps the cached item on failure")
}

func TestExpenseStore_RemoveOptimisticDropsLocally(t *testing.T) {
	projectID := uuid.New()
	e := testExpense(projectID, 100, "MATERIALS", time.Now())

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, []model.Expense{e})
			return
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "expense not found"})
	}))

	s := NewExpenseStore(client, DeleteOptimistic)
	require.NoError(t, s.Fetch(context.Background(), nil))

	require.NoError(t, s.Remove(context.Background(), e.ID))
	assert.Empty(t, s.List(), "optimistic policy removes the item even when the server fails")
}

func TestExpenseStore_DerivedQueries(t *testing.T) {
	projA := uuid.New()
	projB := uuid.New()
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	served := []model.Expense{
		testExpense(projA, 100, "MATERIALS", jan),
		testExpense(projA, 250, "MATERIALS", feb),
		testExpense(projA, 75, "LABOR", mar),
		testExpense(projB, 900, "EQUIPMENT", feb),
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, served)
	}))

	s := NewExpenseStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil))

	assert.True(t, s.TotalByProject(projA).Equal(decimal.NewFromInt(425)))
	assert.True(t, s.TotalByProject(projB).Equal(decimal.NewFromInt(900)))

	byCategory := s.GroupByCategory()
	assert.True(t, byCategory["MATERIALS"].Equal(decimal.NewFromInt(350)))
	assert.True(t, byCategory["LABOR"].Equal(decimal.NewFromInt(75)))

	inRange := s.FilterByDateRange(
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	)
	require.Len(t, inRange, 2)
	for _, e := range inRange {
		assert.Equal(t, time.February, e.Date.Month())
	}
}

func TestExpenseStore_UpdateMergesInPlace(t *testing.T) {
	projectID := uuid.New()
	e := testExpense(projectID, 100, "MATERIALS", time.Now())
	updated := e
	updated.Amount = decimal.NewFromInt(180)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, []model.Expense{e})
		case http.MethodPut:
			assert.Equal(t, "/api/v1/expenses/"+e.ID.String(), r.URL.Path)
			writeJSON(t, w, http.StatusOK, updated)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	s := NewExpenseStore(client, DeleteRollback)
	require.NoError(t, s.Fetch(context.Background(), nil))

	out, err := s.Update(context.Background(), e.ID, map[string]any{"amount": "180"})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(180)))

	items := s.List()
	require.Len(t, items, 1)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(180)))
}
