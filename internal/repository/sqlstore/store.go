package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Store persists the whole transaction collection as one JSON document in
// the kv_store table, keyed by the storage key
type Store struct {
	db      *sql.DB
	dialect Dialect
	key     string
}

var _ domain.TransactionStore = (*Store)(nil)

// New wraps an open database. The kv_store table must already exist.
func New(db *sql.DB, dialect Dialect, key string) *Store {
	if key == "" {
		key = domain.DefaultStorageKey
	}
	return &Store{db: db, dialect: dialect, key: key}
}

// OpenSQLite opens (creating if needed) the sqlite database at path and migrates it
func OpenSQLite(ctx context.Context, path, key string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	return open(ctx, DialectSQLite, path, key)
}

// OpenPostgres connects to the postgres database at url and migrates it
func OpenPostgres(ctx context.Context, url, key string) (*Store, error) {
	return open(ctx, DialectPostgres, url, key)
}

func open(ctx context.Context, dialect Dialect, dsn, key string) (*Store, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}
	if err := RunMigrations(dialect, dsn); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("dialect", string(dialect)).Msg("Transaction store ready")
	return New(db, dialect, key), nil
}

// Load reads the stored collection. A missing row means nothing was saved yet.
func (s *Store) Load(ctx context.Context) ([]domain.Transaction, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.dialect.loadQuery(), s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.key, err)
	}
	return domain.DecodeTransactions([]byte(payload))
}

// Save replaces the stored collection
func (s *Store) Save(ctx context.Context, transactions []domain.Transaction) error {
	payload, err := domain.EncodeTransactions(transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.saveQuery(), s.key, string(payload)); err != nil {
		return fmt.Errorf("upsert %s: %w", s.key, err)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
