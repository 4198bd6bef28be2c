// Package database owns the PostgreSQL connection: pooling, ent wiring,
// embedded migrations and health reporting.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/nocforge/nocforge/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Config holds connection and pool settings, loaded from the environment by
// LoadConfigFromEnv.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the connection string in postgres:// URL form, accepted by
// both the pgx stdlib driver and a bare pgx.Connect. The events
// NotifyListener dials this too; it needs its own connection because LISTEN
// monopolizes one.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	q := url.Values{}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Client is the ent client plus a handle on the raw pool underneath it.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the raw pool for code that bypasses ent (full-text search,
// NOTIFY publishing).
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client. Used by tests that
// manage their own database lifecycle.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the pool, verifies connectivity, applies pending
// migrations and returns the wired client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := applyMigrations(ctx, db, cfg.Database, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// applyMigrations brings the schema up to date from the migrations embedded
// in the binary, then creates the GIN indexes ent's schema cannot express.
//
// The migration files land in pkg/database/migrations (make migrate-create)
// and ship inside the binary via go:embed, so a deployment never depends on
// files next to it.
func applyMigrations(ctx context.Context, db *stdsql.DB, dbName string, drv *entsql.Driver) error {
	present, err := embeddedMigrationsPresent()
	if err != nil {
		return fmt.Errorf("check embedded migrations: %w", err)
	}
	if !present {
		return fmt.Errorf("no embedded migration files found; binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Close only the source. m.Close() would also close the database driver
	// and with it the shared *sql.DB the ent client runs on.
	if err := source.Close(); err != nil {
		return fmt.Errorf("close migration source: %w", err)
	}

	return CreateGINIndexes(ctx, drv)
}

// embeddedMigrationsPresent reports whether any .sql files were embedded.
func embeddedMigrationsPresent() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
