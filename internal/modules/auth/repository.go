package auth

import (
	"context"
	"time"
)

// TokenRepository tracks revoked token ids until they expire on their own.
type TokenRepository interface {
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}
