package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/doppelkopf/app/modules/auth/domain"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthModuleWithoutSecret(t *testing.T) {
	m := NewAuthModule(context.Background(), observability.NewNoop(), Config{RateLimit: 5, RateBurst: 10})

	assert.Nil(t, m.Provider)
	assert.Empty(t, m.Admin)
	assert.Len(t, m.Write, 1)

	_, err := m.IssueToken("lena", authdomain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIssueTokenUsesDefaultTTL(t *testing.T) {
	m := NewAuthModule(context.Background(), observability.NewNoop(), Config{
		Secret:     "test-secret-at-least-32-chars-long!!",
		DefaultTTL: 2 * time.Hour,
		RateLimit:  5,
		RateBurst:  10,
	})
	require.NotNil(t, m.Provider)
	assert.Len(t, m.Admin, 1)
	assert.Len(t, m.Write, 2)

	token, err := m.IssueToken("lena", authdomain.RoleAdmin, 0)
	require.NoError(t, err)

	claims, err := m.Provider.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lena", claims.Subject)
	assert.WithinDuration(t, claims.IssuedAt.Add(2*time.Hour), claims.ExpiresAt, time.Second)
}

func TestWriteGuardRequiresEditor(t *testing.T) {
	m := NewAuthModule(context.Background(), observability.NewNoop(), Config{
		Secret:    "test-secret-at-least-32-chars-long!!",
		RateLimit: 100,
		RateBurst: 100,
	})
	h := httputil.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}), m.Write...)

	post := func(role authdomain.Role) int {
		req := httptest.NewRequest(http.MethodPost, "/api/scorepads", nil)
		if role != "" {
			token, err := m.IssueToken("lena", role, time.Hour)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post(""))
	assert.Equal(t, http.StatusCreated, post(authdomain.RoleEditor))
	assert.Equal(t, http.StatusCreated, post(authdomain.RoleAdmin))
}
