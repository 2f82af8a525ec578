package auth

import (
	"time"
)

// NewTestJWTService creates a JWT service with an injectable clock for
// predictable expiry testing. Used by tests in this and other packages.
func NewTestJWTService(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
