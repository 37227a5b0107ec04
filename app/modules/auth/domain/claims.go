package authdomain

import "time"

// Claims represents the domain model for authentication claims.
type Claims struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
