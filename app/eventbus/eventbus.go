// Package eventbus is the in-process event bus: a watermill GoChannel
// pub/sub with a message router that runs the consumers.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
)

// Publisher publishes JSON events.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Bus owns the pub/sub and the router that dispatches to consumers.
type Bus struct {
	pubsub *gochannel.GoChannel
	Router *message.Router
	logger *slog.Logger
}

var _ Publisher = (*Bus)(nil)

// New creates the bus. When reg is non-nil the router reports handler
// metrics to it.
func New(logger *slog.Logger, reg prometheus.Registerer) (*Bus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, wmLogger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 10 * time.Second}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	if reg != nil {
		builder := metrics.NewPrometheusMetricsBuilder(reg, "doppelkopf", "eventbus")
		builder.AddPrometheusRouterMetrics(router)
	}

	return &Bus{pubsub: pubsub, Router: router, logger: logger}, nil
}

// Publish marshals payload to JSON and publishes it on topic, carrying the
// request correlation id in the message metadata.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if id := attr.ExtractCorrelationID(ctx).Value.String(); id != "" {
		middleware.SetCorrelationID(id, msg)
	}

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	b.logger.DebugContext(ctx, "Event published",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
	)
	return nil
}

// Consume registers a handler that only consumes topic.
func (b *Bus) Consume(handlerName, topic string, handler message.NoPublishHandlerFunc) {
	b.Router.AddNoPublisherHandler(handlerName, topic, b.pubsub, handler)
}

// Run blocks running the router until ctx is done or Close is called.
func (b *Bus) Run(ctx context.Context) error {
	return b.Router.Run(ctx)
}

// Running is closed once every handler is subscribed.
func (b *Bus) Running() chan struct{} {
	return b.Router.Running()
}

// Close stops the router and the pub/sub.
func (b *Bus) Close() error {
	var errs []error
	if err := b.Router.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close router: %w", err))
	}
	if err := b.pubsub.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close pubsub: %w", err))
	}
	return errors.Join(errs...)
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", msg.UUID, err)
	}
	return out, nil
}
