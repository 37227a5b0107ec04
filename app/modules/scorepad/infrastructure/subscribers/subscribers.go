package scorepadsubscribers

import (
	"log/slog"

	"github.com/Black-And-White-Club/doppelkopf/app/eventbus"
	scorepadevents "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/events"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Consumer is the part of the event bus the subscribers register on.
type Consumer interface {
	Consume(handlerName, topic string, handler message.NoPublishHandlerFunc)
}

// MatchStats keeps score statistics of recorded matches.
type MatchStats struct {
	recorded prometheus.Counter
	scores   prometheus.Histogram
	logger   *slog.Logger
}

// NewMatchStats registers the match collectors on reg.
func NewMatchStats(reg prometheus.Registerer, logger *slog.Logger) *MatchStats {
	return &MatchStats{
		recorded: metrics.Register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "doppelkopf",
			Name:      "matches_recorded_total",
			Help:      "Matches appended to any scorepad.",
		})),
		scores: metrics.Register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "doppelkopf",
			Name:      "match_score",
			Help:      "Score of recorded matches.",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		})),
		logger: logger,
	}
}

// Subscribe registers the stats handler on the bus.
func (s *MatchStats) Subscribe(c Consumer) {
	c.Consume("scorepad.match_stats", scorepadevents.MatchRecordedTopic, s.HandleMatchRecorded)
}

// HandleMatchRecorded counts the match. Undecodable payloads are logged
// and acked since redelivery cannot fix them.
func (s *MatchStats) HandleMatchRecorded(msg *message.Message) error {
	payload, err := eventbus.Decode[scorepadevents.MatchRecordedPayload](msg)
	if err != nil {
		s.logger.WarnContext(msg.Context(), "Dropping malformed match event",
			attr.String("correlation_id", middleware.MessageCorrelationID(msg)),
			attr.Error(err),
		)
		return nil
	}

	s.recorded.Inc()
	s.scores.Observe(float64(payload.Score))

	s.logger.DebugContext(msg.Context(), "Match recorded",
		attr.String("correlation_id", middleware.MessageCorrelationID(msg)),
		attr.String("scorepad_id", payload.ScorepadID),
		attr.Int("seq", payload.Seq),
		attr.Int("score", payload.Score),
	)
	return nil
}
