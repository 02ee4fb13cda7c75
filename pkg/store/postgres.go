package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/school-portal-api/pkg/config"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// pgDiskFull is the PostgreSQL class 53 code raised when storage runs out.
const pgDiskFull = "53100"

// PostgresStore persists portal keys in a single portal_kv table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresDB returns a configured PostgreSQL client.
func NewPostgresDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewPostgres wraps an sqlx handle as a Store.
func NewPostgres(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing table when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS portal_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate portal_kv: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM portal_kv WHERE key = $1 LIMIT 1`
	var value string
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("postgres get %s", key))
	}
	return []byte(value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO portal_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgDiskFull {
			return appErrors.Wrap(err, appErrors.ErrStoreFull.Code, fmt.Sprintf("postgres set %s", key))
		}
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("postgres set %s", key))
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM portal_kv WHERE key = $1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, fmt.Sprintf("postgres delete %s", key))
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	const query = `DELETE FROM portal_kv`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, "postgres clear")
	}
	return nil
}

// Close releases the database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
