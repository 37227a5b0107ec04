package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StreamName is the JetStream stream holding forwarded events.
const StreamName = "doppelkopf"

// StreamPublisher is the part of JetStream the forwarder needs.
type StreamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// JetStream forwards events to a NATS JetStream stream.
type JetStream struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// ConnectJetStream connects to url and makes sure the stream covering
// subjects exists.
func ConnectJetStream(ctx context.Context, url string, subjects []string, logger *slog.Logger) (*JetStream, error) {
	conn, err := nats.Connect(url,
		nats.Name("doppelkopf"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	if err := ensureStream(ctx, js, subjects, logger); err != nil {
		conn.Close()
		return nil, err
	}

	return &JetStream{conn: conn, js: js}, nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, subjects []string, logger *slog.Logger) error {
	_, err := js.Stream(ctx, StreamName)
	if errors.Is(err, jetstream.ErrStreamNotFound) {
		if _, err := js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     StreamName,
			Subjects: subjects,
		}); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", StreamName, err)
		}
		logger.InfoContext(ctx, "Created JetStream stream", attr.String("stream", StreamName))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check stream %s: %w", StreamName, err)
	}
	return nil
}

func (j *JetStream) Publish(ctx context.Context, subject string, data []byte) error {
	if _, err := j.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close drains the connection.
func (j *JetStream) Close() error {
	return j.conn.Drain()
}

// Forwarder republishes bus messages to NATS under the same subject.
type Forwarder struct {
	publisher StreamPublisher
	subject   string
	logger    *slog.Logger
}

// NewForwarder creates a forwarder publishing to subject.
func NewForwarder(publisher StreamPublisher, subject string, logger *slog.Logger) *Forwarder {
	return &Forwarder{publisher: publisher, subject: subject, logger: logger}
}

// Handle is a watermill consumer. Publish failures are logged and the
// event is dropped; NATS is a secondary sink.
func (f *Forwarder) Handle(msg *message.Message) error {
	ctx := msg.Context()
	if err := f.publisher.Publish(ctx, f.subject, msg.Payload); err != nil {
		f.logger.ErrorContext(ctx, "Failed to forward event",
			attr.String("subject", f.subject),
			attr.String("correlation_id", middleware.MessageCorrelationID(msg)),
			attr.Error(err),
		)
		return nil
	}
	f.logger.DebugContext(ctx, "Event forwarded", attr.String("subject", f.subject))
	return nil
}
