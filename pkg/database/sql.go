package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQL is a connection to a relational database (SQLite or PostgreSQL).
type SQL struct {
	DB      *sqlx.DB
	Dialect Dialect
}

var _ Database = (*SQL)(nil)

// PostgreSQLOptions is a struct that contains options for connecting to PostgreSQL.
type PostgreSQLOptions struct {
	User         string
	Password     string
	Database     string
	Host         string
	Port         string
	SSLMode      string
	MaxOpenConns int
}

func (p PostgreSQLOptions) convertToConnectionURL() string {
	port := p.Port
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%s sslmode=%s",
		p.User, p.Password, p.Database, p.Host, port, p.SSLMode,
	)
}

// NewPostgreSQL returns a new pooled connection to PostgreSQL.
func NewPostgreSQL(options PostgreSQLOptions) (*SQL, error) {
	db, err := sqlx.Open(string(DialectPostgres), options.convertToConnectionURL())
	if err != nil {
		return nil, fmt.Errorf("open postgresql connection: %w", err)
	}

	if options.MaxOpenConns > 0 {
		db.SetMaxOpenConns(options.MaxOpenConns)
	}

	return &SQL{
		DB:      db,
		Dialect: DialectPostgres,
	}, nil
}

// NewSQLite opens the SQLite database file at path, creating its directory if needed.
// The returned handle keeps a single connection: every statement is serialized through it.
func NewSQLite(path string) (*SQL, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create sqlite directory %q: %w", dir, err)
		}
	}

	db, err := sqlx.Open(string(DialectSQLite), path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return &SQL{
		DB:      db,
		Dialect: DialectSQLite,
	}, nil
}

// StatementBuilder returns a squirrel builder with the placeholder format of the dialect.
func (s *SQL) StatementBuilder() sq.StatementBuilderType {
	if s.Dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Ping pings the database.
func (s *SQL) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close closes the connection with database.
func (s *SQL) Close() error {
	return s.DB.Close()
}
