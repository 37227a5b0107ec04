package authdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleEditor.IsValid())
	assert.False(t, Role("owner").IsValid())

	assert.True(t, RoleAdmin.Satisfies(RoleEditor))
	assert.True(t, RoleEditor.Satisfies(RoleEditor))
	assert.False(t, RoleEditor.Satisfies(RoleAdmin))
}

func TestClaimsIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	c := &Claims{ExpiresAt: now}

	assert.False(t, c.IsExpired(now))
	assert.True(t, c.IsExpired(now.Add(time.Second)))
}
