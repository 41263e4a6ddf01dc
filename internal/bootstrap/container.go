package bootstrap

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/infra/cache"
	"github.com/proxis-hn/proxis/internal/infra/db"
	"github.com/proxis-hn/proxis/internal/infra/logger"
	mq "github.com/proxis-hn/proxis/internal/infra/queue"
	"github.com/proxis-hn/proxis/internal/modules/handler"
	"github.com/proxis-hn/proxis/internal/modules/model"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/proxis-hn/proxis/internal/telemetry"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if telemetry.Enabled(cfg) {
			if err := db.RegisterOpenTelemetryPlugin(d); err != nil {
				return nil, err
			}
		}
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.User{},
				&model.Contact{},
				&model.Project{},
				&model.BudgetItem{},
				&model.Expense{},
				&model.Invoice{},
				&model.PurchaseOrder{},
				&model.Material{},
				&model.ProjectMaterial{},
				&model.MaterialRequest{},
				&model.Task{},
				&model.Setting{},
			); err != nil {
				return nil, err
			}
		}

		if err := EnsureDefaultSettings(context.Background(), d, log); err != nil {
			return nil, err
		}

		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb, err := cache.New(cfg)
		if err != nil {
			return nil, err
		}
		if telemetry.Enabled(cfg) {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				return nil, err
			}
		}
		return rdb, nil
	})

	// RabbitMQ: disabled by default; the publisher stays nil and domain
	// events become no-ops.
	do.Provide(inj, func(i *do.Injector) (mq.DialFunc, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mq.NewDialFunc(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		dialFn := do.MustInvoke[mq.DialFunc](i)
		return dialFn()
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		conn := do.MustInvoke[*amqp.Connection](i)
		log := do.MustInvoke[*zap.Logger](i)
		dialFn := do.MustInvoke[mq.DialFunc](i)
		return mq.NewPublisher(conn, log, cfg, dialFn)
	})
	do.Provide(inj, func(i *do.Injector) (*service.Events, error) {
		return service.NewEvents(
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.BudgetItemRepo, error) {
		return repo.NewBudgetItemRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ExpenseRepo, error) {
		return repo.NewExpenseRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InvoiceRepo, error) {
		return repo.NewInvoiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PurchaseOrderRepo, error) {
		return repo.NewPurchaseOrderRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MaterialRepo, error) {
		return repo.NewMaterialRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectMaterialRepo, error) {
		return repo.NewProjectMaterialRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MaterialRequestRepo, error) {
		return repo.NewMaterialRequestRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContactRepo, error) {
		return repo.NewContactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingRepo, error) {
		return repo.NewSettingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.BudgetItemService, error) {
		return service.NewBudgetItemService(do.MustInvoke[repo.BudgetItemRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExpenseService, error) {
		return service.NewExpenseService(
			do.MustInvoke[repo.ExpenseRepo](i),
			do.MustInvoke[*service.Events](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InvoiceService, error) {
		return service.NewInvoiceService(do.MustInvoke[repo.InvoiceRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PurchaseOrderService, error) {
		return service.NewPurchaseOrderService(do.MustInvoke[repo.PurchaseOrderRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MaterialService, error) {
		return service.NewMaterialService(do.MustInvoke[repo.MaterialRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectMaterialService, error) {
		return service.NewProjectMaterialService(
			do.MustInvoke[repo.ProjectMaterialRepo](i),
			do.MustInvoke[repo.MaterialRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MaterialRequestService, error) {
		return service.NewMaterialRequestService(do.MustInvoke[repo.MaterialRequestRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(do.MustInvoke[repo.TaskRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(do.MustInvoke[repo.ContactRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSettingService(
			do.MustInvoke[repo.SettingRepo](i),
			do.MustInvoke[*redis.Client](i),
			cfg.Redis.SettingsTTLSec,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.BudgetItemHandler, error) {
		return handler.NewBudgetItemHandler(do.MustInvoke[service.BudgetItemService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ExpenseHandler, error) {
		return handler.NewExpenseHandler(do.MustInvoke[service.ExpenseService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InvoiceHandler, error) {
		return handler.NewInvoiceHandler(do.MustInvoke[service.InvoiceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PurchaseOrderHandler, error) {
		return handler.NewPurchaseOrderHandler(do.MustInvoke[service.PurchaseOrderService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MaterialHandler, error) {
		return handler.NewMaterialHandler(do.MustInvoke[service.MaterialService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectMaterialHandler, error) {
		return handler.NewProjectMaterialHandler(do.MustInvoke[service.ProjectMaterialService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MaterialRequestHandler, error) {
		return handler.NewMaterialRequestHandler(do.MustInvoke[service.MaterialRequestService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.ContactService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingHandler, error) {
		return handler.NewSettingHandler(do.MustInvoke[service.SettingService](i)), nil
	})

	return inj
}
