package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type postgresTokenRepository struct {
	db *sql.DB
}

// NewPostgresTokenRepository creates a new PostgreSQL revoked-token repository.
func NewPostgresTokenRepository(db *sql.DB) TokenRepository {
	return &postgresTokenRepository{db: db}
}

func (r *postgresTokenRepository) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO revoked_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`, jti, expiresAt)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	// Opportunistically clean up expired revocations.
	_, _ = r.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < NOW()`)

	return nil
}

func (r *postgresTokenRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM revoked_tokens WHERE jti = $1
	`, jti).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return count > 0, nil
}
