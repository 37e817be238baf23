// Package auth verifies bearer credentials. Production deployments verify
// Firebase ID tokens; local mode verifies HMAC-signed JWTs so the API can
// run without Google credentials.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity attached to authenticated requests.
type Claims struct {
	Email string
	Name  string
}

// Verifier checks a raw bearer token and returns its claims. Rejections of
// any kind surface as ErrInvalidToken.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
