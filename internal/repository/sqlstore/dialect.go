package sqlstore

import "fmt"

// Dialect selects the SQL flavour and migration set of a Store
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	default:
		return "sqlite"
	}
}

func (d Dialect) validate() error {
	switch d {
	case DialectPostgres, DialectSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported sql dialect %q", d)
	}
}

func (d Dialect) loadQuery() string {
	if d == DialectPostgres {
		return `SELECT value::text FROM kv_store WHERE key = $1`
	}
	return `SELECT value FROM kv_store WHERE key = ?`
}

func (d Dialect) saveQuery() string {
	if d == DialectPostgres {
		return `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	}
	return `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
}
