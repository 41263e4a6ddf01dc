package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/modules/handler"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config:                 &config.Config{},
		Log:                    zap.NewNop(),
		ProjectHandler:         handler.NewProjectHandler(nil),
		BudgetItemHandler:      handler.NewBudgetItemHandler(nil),
		ExpenseHandler:         handler.NewExpenseHandler(nil),
		InvoiceHandler:         handler.NewInvoiceHandler(nil),
		PurchaseOrderHandler:   handler.NewPurchaseOrderHandler(nil),
		MaterialHandler:        handler.NewMaterialHandler(nil),
		ProjectMaterialHandler: handler.NewProjectMaterialHandler(nil),
		MaterialRequestHandler: handler.NewMaterialRequestHandler(nil),
		TaskHandler:            handler.NewTaskHandler(nil),
		UserHandler:            handler.NewUserHandler(nil),
		ContactHandler:         handler.NewContactHandler(nil),
		SettingHandler:         handler.NewSettingHandler(nil),
	})
}

func routeSet(r *gin.Engine) map[string]bool {
	out := make(map[string]bool)
	for _, rt := range r.Routes() {
		out[rt.Method+" "+rt.Path] = true
	}
	return out
}

func TestNewRouter_BudgetRoutes(t *testing.T) {
	routes := routeSet(newTestRouter())

	assert.True(t, routes["GET /api/v1/budgets"])
	assert.True(t, routes["POST /api/v1/budgets"])
	assert.True(t, routes["GET /api/v1/budgets/:id"])
	assert.True(t, routes["PUT /api/v1/budgets/:id"])
	assert.True(t, routes["DELETE /api/v1/budgets/:id"])

	assert.False(t, routes["GET /api/v1/budget-items"])
}

func TestNewRouter_ResourceSurface(t *testing.T) {
	routes := routeSet(newTestRouter())

	for _, want := range []string{
		"GET /health",
		"GET /api/v1/projects",
		"DELETE /api/v1/projects/:id",
		"GET /api/v1/expenses",
		"GET /api/v1/invoices",
		"GET /api/v1/purchase-orders",
		"POST /api/v1/purchase-orders",
		"GET /api/v1/materials",
		"DELETE /api/v1/materials/:id",
		"GET /api/v1/project-materials",
		"GET /api/v1/material-requests",
		"POST /api/v1/material-requests",
		"GET /api/v1/tasks",
		"GET /api/v1/users",
		"GET /api/v1/contacts",
		"GET /api/v1/settings",
		"PUT /api/v1/settings",
	} {
		assert.True(t, routes[want], want)
	}
}
