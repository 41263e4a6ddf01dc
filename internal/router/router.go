package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/middleware"
	"github.com/proxis-hn/proxis/internal/modules/handler"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/telemetry"
)

type RouterDeps struct {
	Config                 *config.Config
	Log                    *zap.Logger
	ProjectHandler         *handler.ProjectHandler
	BudgetItemHandler      *handler.BudgetItemHandler
	ExpenseHandler         *handler.ExpenseHandler
	InvoiceHandler         *handler.InvoiceHandler
	PurchaseOrderHandler   *handler.PurchaseOrderHandler
	MaterialHandler        *handler.MaterialHandler
	ProjectMaterialHandler *handler.ProjectMaterialHandler
	MaterialRequestHandler *handler.MaterialRequestHandler
	TaskHandler            *handler.TaskHandler
	UserHandler            *handler.UserHandler
	ContactHandler         *handler.ContactHandler
	SettingHandler         *handler.SettingHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if telemetry.Enabled(d.Config) {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	if len(d.Config.CORS.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.CORS.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.List)
			projects.POST("", d.ProjectHandler.Create)
			projects.GET("/:id", d.ProjectHandler.Get)
			projects.PUT("/:id", d.ProjectHandler.Update)
			projects.DELETE("/:id", d.ProjectHandler.Delete)
		}

		budgetItems := v1.Group("/budgets")
		{
			budgetItems.GET("", d.BudgetItemHandler.List)
			budgetItems.POST("", d.BudgetItemHandler.Create)
			budgetItems.GET("/:id", d.BudgetItemHandler.Get)
			budgetItems.PUT("/:id", d.BudgetItemHandler.Update)
			budgetItems.DELETE("/:id", d.BudgetItemHandler.Delete)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", d.ExpenseHandler.List)
			expenses.POST("", d.ExpenseHandler.Create)
			expenses.GET("/:id", d.ExpenseHandler.Get)
			expenses.PUT("/:id", d.ExpenseHandler.Update)
			expenses.DELETE("/:id", d.ExpenseHandler.Delete)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.GET("", d.InvoiceHandler.List)
			invoices.POST("", d.InvoiceHandler.Create)
			invoices.GET("/:id", d.InvoiceHandler.Get)
			invoices.PUT("/:id", d.InvoiceHandler.Update)
			invoices.DELETE("/:id", d.InvoiceHandler.Delete)
		}

		purchaseOrders := v1.Group("/purchase-orders")
		{
			purchaseOrders.GET("", d.PurchaseOrderHandler.List)
			purchaseOrders.POST("", d.PurchaseOrderHandler.Create)
		}

		materials := v1.Group("/materials")
		{
			materials.GET("", d.MaterialHandler.List)
			materials.POST("", d.MaterialHandler.Create)
			materials.DELETE("/:id", d.MaterialHandler.Delete)
		}

		projectMaterials := v1.Group("/project-materials")
		{
			projectMaterials.GET("", d.ProjectMaterialHandler.List)
			projectMaterials.POST("", d.ProjectMaterialHandler.Assign)
		}

		materialRequests := v1.Group("/material-requests")
		materialRequests.Use(middleware.Session(d.Config))
		{
			materialRequests.GET("", d.MaterialRequestHandler.List)
			materialRequests.POST("", d.MaterialRequestHandler.Create)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", d.TaskHandler.List)
			tasks.POST("", d.TaskHandler.Create)
			tasks.GET("/:id", d.TaskHandler.Get)
			tasks.PUT("/:id", d.TaskHandler.Update)
			tasks.DELETE("/:id", d.TaskHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", d.UserHandler.List)
			users.POST("", d.UserHandler.Create)
			users.GET("/:id", d.UserHandler.Get)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.GET("", d.ContactHandler.List)
			contacts.POST("", d.ContactHandler.Create)
			contacts.GET("/:id", d.ContactHandler.Get)
			contacts.PUT("/:id", d.ContactHandler.Update)
			contacts.DELETE("/:id", d.ContactHandler.Delete)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", d.SettingHandler.Get)
			settings.PUT("", d.SettingHandler.Update)
		}
	}

	return r
}
