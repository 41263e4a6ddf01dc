package mq

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/proxis-hn/proxis/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DialFunc opens a broker connection; it is also used for reconnects.
type DialFunc func() (*amqp.Connection, error)

// NewDialFunc builds the dialer from config, upgrading to TLS when requested.
func NewDialFunc(cfg *config.Config) DialFunc {
	return func() (*amqp.Connection, error) {
		useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")

		if useTLS {
			tlsConfig := &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
			url := cfg.RabbitMQ.URL
			if strings.HasPrefix(url, "amqp://") {
				url = strings.Replace(url, "amqp://", "amqps://", 1)
			}
			return amqp.DialTLS(url, tlsConfig)
		}

		return amqp.Dial(cfg.RabbitMQ.URL)
	}
}

// Publisher emits domain events (expense.created, invoice.auto_created, …) as
// persistent JSON messages on the configured exchange.
type Publisher struct {
	ch     *amqp.Channel
	log    *zap.Logger
	cfg    *config.Config
	dialFn DialFunc
}

func NewPublisher(conn *amqp.Connection, log *zap.Logger, cfg *config.Config, dialFn DialFunc) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(cfg.RabbitMQ.Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch, log: log, cfg: cfg, dialFn: dialFn}, nil
}

func (p *Publisher) Close() error { return p.ch.Close() }

// PublishJSON publishes body under routingKey, reconnecting once on a closed
// channel.
func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, body any) error {
	b, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
	}

	err = p.ch.PublishWithContext(ctx, p.cfg.RabbitMQ.Exchange, routingKey, false, false, publishing)
	if err != nil && p.dialFn != nil && p.ch.IsClosed() {
		p.log.Warn("publish channel closed, reconnecting", zap.Error(err))
		conn, dialErr := p.dialFn()
		if dialErr != nil {
			return err
		}
		ch, chErr := conn.Channel()
		if chErr != nil {
			return err
		}
		p.ch = ch
		return p.ch.PublishWithContext(ctx, p.cfg.RabbitMQ.Exchange, routingKey, false, false, publishing)
	}
	return err
}
