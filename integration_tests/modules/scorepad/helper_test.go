//go:build integration

package scorepadintegrationtests

import (
	"context"
	"sync"
	"testing"
	"time"

	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	scorepadservice "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/application"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/integration_tests/testutils"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingPublisher keeps every published payload.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, payload)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// TestDeps holds dependencies needed by individual tests.
type TestDeps struct {
	Ctx       context.Context
	Service   scorepadservice.Service
	Players   playerservice.Service
	Repo      scorepaddb.Repository
	Publisher *recordingPublisher
	Gen       *testutils.TestDataGenerator
}

func setup(t *testing.T) TestDeps {
	t.Helper()

	ctx, cancel := context.WithTimeout(testEnv.Ctx, 30*time.Second)
	t.Cleanup(cancel)
	require.NoError(t, testEnv.Reset(ctx))

	logger := testutils.TestLogger(t)
	tracer := noop.NewTracerProvider().Tracer("test")
	playerRepo := playerdb.NewRepository(testEnv.DB)
	repo := scorepaddb.NewRepository(testEnv.DB)
	pub := &recordingPublisher{}

	return TestDeps{
		Ctx:       ctx,
		Service:   scorepadservice.NewScorepadService(repo, playerRepo, pub, logger, metrics.NewNoop(), tracer, testEnv.DB),
		Players:   playerservice.NewPlayerService(playerRepo, logger, metrics.NewNoop(), tracer, testEnv.DB),
		Repo:      repo,
		Publisher: pub,
		Gen:       testutils.NewTestDataGenerator(),
	}
}

// seat creates n players and a scorepad seating them.
func (d TestDeps) seat(t *testing.T, n int) (*scorepadservice.ScorepadInfo, []string) {
	t.Helper()
	ids := make([]string, 0, n)
	for range n {
		p, err := d.Players.CreatePlayer(d.Ctx, d.Gen.PlayerName(), d.Gen.PictureURL())
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	pad, err := d.Service.CreateScorepad(d.Ctx, scorepadservice.CreateScorepadInput{
		Name:     d.Gen.ScorepadName(),
		Players:  ids,
		PlayedAt: "2026-03-14T00:00:00Z",
	})
	require.NoError(t, err)
	return pad, ids
}
