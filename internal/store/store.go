package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/periodical/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is stamped into PRAGMA user_version by CreateTables.
const schemaVersion = 1

// Table names managed by the store.
const (
	TableAuthors   = "authors"
	TableMagazines = "magazines"
	TableArticles  = "articles"
)

// Tables lists every managed table in creation order.
var Tables = []string{TableAuthors, TableMagazines, TableArticles}

// Store is the storage handle for one database file.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and creates the
// tables if they are missing.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.CreateTables(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateTables creates the authors, magazines and articles tables if they do
// not exist and stamps the schema version. Safe to call any number of times.
func (s *Store) CreateTables(ctx context.Context) error {
	return s.withConn(ctx, "", "create tables", func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
			return err
		}
		// PRAGMA does not accept bound parameters; schemaVersion is a constant.
		_, err := conn.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
		return err
	})
}

// DropTable drops one of the managed tables. Unknown names are rejected
// before any SQL runs.
func (s *Store) DropTable(ctx context.Context, table string) error {
	if !isManagedTable(table) {
		return model.ValidationError("", fmt.Sprintf("unknown table %q: must be one of %v", table, Tables))
	}
	return s.withConn(ctx, entityForTable(table), "drop table", func(conn *sql.Conn) error {
		// Identifiers cannot be bound; table is one of the constants above.
		_, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
		return err
	})
}

// SchemaVersion returns the stamped PRAGMA user_version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.withConn(ctx, "", "schema version", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	})
	return version, err
}

// withConn acquires a dedicated connection, runs fn, and releases the
// connection before returning. Any failure is wrapped as a storage error;
// errors that are already *model.Error pass through unchanged.
func (s *Store) withConn(ctx context.Context, entity, op string, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return model.StorageError(entity, op, fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Close()

	if err := fn(conn); err != nil {
		if model.CodeOf(err) != "" {
			return err
		}
		return model.StorageError(entity, op, err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

func isManagedTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}

func entityForTable(table string) string {
	switch table {
	case TableAuthors:
		return "author"
	case TableMagazines:
		return "magazine"
	case TableArticles:
		return "article"
	}
	return ""
}
