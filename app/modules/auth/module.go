package auth

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/doppelkopf/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/doppelkopf/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"golang.org/x/time/rate"
)

// Config holds the auth module settings.
type Config struct {
	Secret         string
	DefaultTTL     time.Duration
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
}

// Module bundles the middleware the other modules mount on their routes.
type Module struct {
	// Provider is nil when no secret is configured.
	Provider authjwt.Provider
	Limiter  *authhandlers.IPRateLimiter
	CORS     httputil.Middleware
	// Write guards every mutating route: rate limiting, plus an editor token
	// when a secret is configured.
	Write []httputil.Middleware
	// Admin guards destructive routes. Empty when no secret is configured.
	Admin      []httputil.Middleware
	defaultTTL time.Duration
}

// NewAuthModule builds the rate limiter, CORS handling and, when a secret is
// set, the JWT provider with the editor and admin guards.
func NewAuthModule(ctx context.Context, obs observability.Observability, cfg Config) *Module {
	logger := obs.Provider.Logger
	logger.InfoContext(ctx, "auth.NewAuthModule initializing")

	limiter := authhandlers.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	m := &Module{
		Limiter:    limiter,
		CORS:       authhandlers.CORSMiddleware(cfg.AllowedOrigins),
		Write:      []httputil.Middleware{authhandlers.RateLimitMiddleware(limiter, logger)},
		defaultTTL: cfg.DefaultTTL,
	}

	if cfg.Secret == "" {
		logger.WarnContext(ctx, "auth.secret not set, write and admin routes are unguarded")
		return m
	}

	m.Provider = authjwt.NewProvider(cfg.Secret)
	m.Write = append(m.Write, authhandlers.RequireRole(m.Provider, authdomain.RoleEditor, logger))
	m.Admin = []httputil.Middleware{authhandlers.RequireRole(m.Provider, authdomain.RoleAdmin, logger)}
	return m
}

// IssueToken signs a token for subject. A zero ttl uses the configured default.
func (m *Module) IssueToken(subject string, role authdomain.Role, ttl time.Duration) (string, error) {
	if m.Provider == nil {
		return "", ErrNoSecret
	}
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	return m.Provider.GenerateToken(subject, role, ttl)
}
