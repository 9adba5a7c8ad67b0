package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestOpen_OpensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	_, err = s1.InsertOrder(context.Background(), newTestOrder("Alice", "Pizza", "10"))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var count int
	require.NoError(t, s2.db.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var name string
	err = s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='orders'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "orders", name)
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
		{"user_version", fmt.Sprint(schemaVersion)},
	}
	for _, tt := range tests {
		got, err := s.pragma(tt.pragma)
		require.NoError(t, err, tt.pragma)
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "orders.db?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", dsn("orders.db"))
}

func TestOpen_RefusesNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestOpen_SchemaColumns(t *testing.T) {
	s := createTestStore(t)

	rows, err := s.db.Query("SELECT name, type FROM pragma_table_info('orders') ORDER BY cid")
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name, typ string
		require.NoError(t, rows.Scan(&name, &typ))
		cols = append(cols, name+" "+typ)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{
		"order_id INTEGER",
		"customer_name TEXT",
		"items TEXT",
		"total_bill NUMERIC",
	}, cols)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}
