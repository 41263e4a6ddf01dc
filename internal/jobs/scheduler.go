package jobs

import (
	"context"
	"time"

	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/modules/repo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs recurring maintenance: today only the overdue-invoice
// sweep, which flips PENDING invoices past their due date to OVERDUE.
type Scheduler struct {
	cron     *cron.Cron
	invoices repo.InvoiceRepo
	log      *zap.Logger
}

func NewScheduler(cfg *config.Config, invoices repo.InvoiceRepo, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		invoices: invoices,
		log:      log,
	}

	schedule := cfg.Cron.OverdueSchedule
	if schedule == "" {
		schedule = "0 6 * * *"
	}
	if _, err := s.cron.AddFunc(schedule, s.sweepOverdue); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() { s.cron.Start() }

func (s *Scheduler) Stop() context.Context { return s.cron.Stop() }

func (s *Scheduler) sweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.invoices.MarkOverdue(ctx, time.Now())
	if err != nil {
		s.log.Error("overdue invoice sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("invoices marked overdue", zap.Int64("count", n))
	}
}
