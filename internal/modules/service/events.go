package service

import (
	"context"
	"time"

	mq "github.com/proxis-hn/proxis/internal/infra/queue"
	"go.uber.org/zap"
)

// Routing keys for domain events.
const (
	EventExpenseCreated    = "expense.created"
	EventExpenseDeleted    = "expense.deleted"
	EventInvoiceAutoCreate = "invoice.auto_created"
)

// Events publishes domain events best-effort: failures are logged and never
// fail the originating request. A nil publisher disables publishing.
type Events struct {
	pub *mq.Publisher
	log *zap.Logger
}

func NewEvents(pub *mq.Publisher, log *zap.Logger) *Events {
	return &Events{pub: pub, log: log}
}

func (e *Events) Publish(ctx context.Context, routingKey string, payload any) {
	if e == nil || e.pub == nil {
		return
	}
	body := map[string]any{
		"event":       routingKey,
		"occurred_at": time.Now().UTC(),
		"payload":     payload,
	}
	if err := e.pub.PublishJSON(ctx, routingKey, body); err != nil {
		e.log.Warn("event publish failed",
			zap.String("event", routingKey),
			zap.Error(err))
	}
}
