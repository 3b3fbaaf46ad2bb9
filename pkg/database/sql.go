package database

import (
	"context"
	"fmt"
	"net"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"    // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

// Driver represents a supported SQL driver.
type Driver string

const (
	// DriverPostgres is backed by lib/pq.
	DriverPostgres Driver = "postgres"
	// DriverSQLite is backed by modernc.org/sqlite.
	DriverSQLite Driver = "sqlite"
)

// SQL is a struct that contains a connection to a SQL database.
type SQL struct {
	DB     *sqlx.DB
	Driver Driver
}

var _ Database = (*SQL)(nil)

// PostgreSQLOptions is a struct that contains options for connecting to PostgreSQL.
type PostgreSQLOptions struct {
	// URL takes precedence over the discrete fields when set.
	URL      string
	User     string
	Password string
	Database string
	Host     string
	Port     string
	SSLMode  string
}

func (p PostgreSQLOptions) convertToConnectionURL() string {
	if p.URL != "" {
		return p.URL
	}

	host := p.Host
	if p.Port != "" {
		host = net.JoinHostPort(p.Host, p.Port)
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		p.User, p.Password, host, p.Database, p.SSLMode,
	)
}

// NewPostgreSQL returns a new connection to PostgreSQL.
func NewPostgreSQL(options PostgreSQLOptions) (*SQL, error) {
	db, err := sqlx.Open(string(DriverPostgres), options.convertToConnectionURL())
	if err != nil {
		return nil, fmt.Errorf("open postgresql connection: %w", err)
	}

	return &SQL{DB: db, Driver: DriverPostgres}, nil
}

// NewSQLite returns a new connection to a SQLite file, ":memory:" opens a private in-memory database.
func NewSQLite(path string) (*SQL, error) {
	db, err := sqlx.Open(string(DriverSQLite), path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite connection: %w", err)
	}

	// SQLite allows a single writer and an in-memory database lives inside one connection.
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	return &SQL{DB: db, Driver: DriverSQLite}, nil
}

// StatementBuilder returns squirrel builder with placeholders suitable for the driver.
func (s *SQL) StatementBuilder() sq.StatementBuilderType {
	if s.Driver == DriverPostgres {
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
