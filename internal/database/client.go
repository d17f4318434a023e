package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Client struct {
	drv     *entsql.Driver
	db      *sql.DB
	q       querier
	dialect string
}

func New(ctx context.Context, cfg *models.DatabaseConfig) (*Client, error) {
	switch cfg.DBType {
	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("failed to parse connection string: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return Open(dialect.Postgres, stdlib.OpenDBFromPool(pool)), nil
	case "mysql":
		mcfg, err := mysql.ParseDSN(cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("failed to parse connection string: %w", err)
		}
		// Timestamps are scanned into time.Time, and updates that change nothing
		// still report the matched row.
		mcfg.ParseTime = true
		mcfg.ClientFoundRows = true

		db, err := sql.Open(dialect.MySQL, mcfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		return Open(dialect.MySQL, db), nil
	case "sqlite":
		db, err := sql.Open(cfg.DBType, cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
		}
		return Open(dialect.SQLite, db), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DBType)
	}
}

// Open wraps an already opened database handle.
func Open(dialectName string, db *sql.DB) *Client {
	return &Client{
		drv:     entsql.OpenDB(dialectName, db),
		db:      db,
		q:       db,
		dialect: dialectName,
	}
}

func (c *Client) Close() error {
	return c.drv.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Migrate creates missing tables, columns and indexes.
func (c *Client) Migrate(ctx context.Context) error {
	logger := log.FromContext(ctx)
	logger.Info("initiating database schema migration")

	m, err := schema.NewMigrate(c.drv, schema.WithDropIndex(true), schema.WithDropColumn(true))
	if err != nil {
		return fmt.Errorf("failed to prepare migration: %w", err)
	}

	if err = m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("database schema migration complete")
	return nil
}

// WithTx runs fn against a client bound to a single transaction, committing
// when fn returns nil and rolling back otherwise.
func (c *Client) WithTx(ctx context.Context, fn func(tx *Client) error) error {
	sqlTx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txc := *c
	txc.q = sqlTx

	if err = fn(&txc); err != nil {
		if rerr := sqlTx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return sqlTx.Commit()
}

func (c *Client) builder() *entsql.DialectBuilder {
	return entsql.Dialect(c.dialect)
}
