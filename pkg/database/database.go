package database

import "context"

// Database represents a database connection.
type Database interface {
	// Ping pings the database.
	Ping(ctx context.Context) error
	// Close closes the connection with database.
	Close() error
}

// Dialect represents an SQL dialect supported by the application.
type Dialect string

const (
	// DialectSQLite is the dialect of SQLite databases.
	DialectSQLite Dialect = "sqlite3"
	// DialectPostgres is the dialect of PostgreSQL databases.
	DialectPostgres Dialect = "postgres"
)
