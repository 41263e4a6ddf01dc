package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/proxis-hn/proxis/internal/bootstrap"
	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/jobs"
	"github.com/proxis-hn/proxis/internal/modules/handler"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/proxis-hn/proxis/internal/router"
	"github.com/proxis-hn/proxis/internal/telemetry"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	// The tracer provider must exist before the DB and redis providers
	// register their instrumentation plugins.
	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}

	r := router.NewRouter(router.RouterDeps{
		Config:                 cfg,
		Log:                    log,
		ProjectHandler:         do.MustInvoke[*handler.ProjectHandler](inj),
		BudgetItemHandler:      do.MustInvoke[*handler.BudgetItemHandler](inj),
		ExpenseHandler:         do.MustInvoke[*handler.ExpenseHandler](inj),
		InvoiceHandler:         do.MustInvoke[*handler.InvoiceHandler](inj),
		PurchaseOrderHandler:   do.MustInvoke[*handler.PurchaseOrderHandler](inj),
		MaterialHandler:        do.MustInvoke[*handler.MaterialHandler](inj),
		ProjectMaterialHandler: do.MustInvoke[*handler.ProjectMaterialHandler](inj),
		MaterialRequestHandler: do.MustInvoke[*handler.MaterialRequestHandler](inj),
		TaskHandler:            do.MustInvoke[*handler.TaskHandler](inj),
		UserHandler:            do.MustInvoke[*handler.UserHandler](inj),
		ContactHandler:         do.MustInvoke[*handler.ContactHandler](inj),
		SettingHandler:         do.MustInvoke[*handler.SettingHandler](inj),
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: r,
	}

	var scheduler *jobs.Scheduler
	if cfg.Cron.Enabled {
		var err error
		scheduler, err = jobs.NewScheduler(cfg, do.MustInvoke[repo.InvoiceRepo](inj), log)
		if err != nil {
			log.Fatal("scheduler init failed", zap.Error(err))
		}
		scheduler.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		if scheduler != nil {
			<-scheduler.Stop().Done()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := telemetry.Shutdown(flushCtx); err != nil {
		log.Warn("tracing shutdown", zap.Error(err))
	}
	flushCancel()

	if err := inj.Shutdown(); err != nil {
		log.Warn("container shutdown", zap.Error(err))
	}
	log.Info("bye")
}
