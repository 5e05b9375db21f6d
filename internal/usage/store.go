package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles remote_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseToken atomically checks the monthly quota and deducts one token.
// It resets the counter to DefaultTokens when last_reset_month is behind the
// current month. Returns ErrInsufficientTokens when 0 rows are updated (quota
// exhausted or client absent).
func (s *Store) UseToken(ctx context.Context, clientKey string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE remote_usage SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE client_key = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, now, DefaultTokens, clientKey)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientTokens
	}
	return nil
}

// EnsureClient inserts a new remote_usage row for clientKey with the default
// token allowance. If the row already exists the insert is silently skipped.
func (s *Store) EnsureClient(ctx context.Context, clientKey string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO remote_usage (client_key, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_key) DO NOTHING
	`, clientKey, DefaultTokens, time.Now().Format("2006-01"))
	return err
}
