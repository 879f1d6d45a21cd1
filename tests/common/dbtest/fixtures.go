//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetStore empties the key-value table backing the reservation store.
func ResetStore(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE kv_entries")
	return err
}

// StoredRecords decodes the JSON array persisted under key. A missing row
// yields nil.
func StoredRecords(t *testing.T, db DBLike, key string) []map[string]any {
	t.Helper()

	var raw []byte
	err := db.QueryRow(context.Background(), "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(raw, &records))
	return records
}
