package auth

import "errors"

// ErrNoSecret is returned when tokens are requested without a configured secret.
var ErrNoSecret = errors.New("auth secret is not configured")
