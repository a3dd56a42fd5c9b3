package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mbopage/ezycook-cli/internal/common"
	"github.com/mbopage/ezycook-cli/internal/cryptox"
	"github.com/mbopage/ezycook-cli/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). Values are sealed with AES-GCM before they touch the database and
// opened again on the way out.
type SQLiteRepository struct {
	db  dbx.DBTX
	key []byte
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
// The key must be the 32-byte installation key produced by LoadOrCreateKey.
func NewSQLiteRepository(db dbx.DBTX, key []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) Save(ctx context.Context, key string, value []byte) error {
	sealed, nonce, err := cryptox.Seal(value, r.key)
	if err != nil {
		return fmt.Errorf("failed to seal credential[%s]: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, nonce = excluded.nonce
	`, key, sealed, nonce)
	if err != nil {
		return fmt.Errorf("%w: failed to save credential[%s]: %w", common.ErrStorage, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var sealed, nonce []byte
	err := r.db.QueryRowContext(ctx, `SELECT value, nonce FROM credentials WHERE key = ?`, key).
		Scan(&sealed, &nonce)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load credential[%s]: %w", common.ErrStorage, key, err)
	}

	value, err := cryptox.Open(sealed, nonce, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: failed to delete credential[%s]: %w", common.ErrStorage, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("%w: failed to clear credentials: %w", common.ErrStorage, err)
	}
	return nil
}
