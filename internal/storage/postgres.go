package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"VCARD_BACK-END/internal/config"
)

// PostgresKV stores values in a single two-column table.
type PostgresKV struct {
	pool  *pgxpool.Pool
	table string
}

func NewPostgresKV(ctx context.Context, dsn string, cfg config.PostgresConfig) (*PostgresKV, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol keeps PgBouncer in transaction mode working
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pcfg.ConnConfig.RuntimeParams["application_name"] = "vcard-backend"
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = cfg.MinConns
	pcfg.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	kv := &PostgresKV{
		pool:  pool,
		table: pgx.Identifier{cfg.Table}.Sanitize(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if err := kv.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return kv, nil
}

func (p *PostgresKV) ensureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
create table if not exists %s (
	key        text primary key,
	value      text not null,
	updated_at timestamptz not null default now()
)`, p.table)
	if _, err := p.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	q := fmt.Sprintf(`select value from %s where key = $1`, p.table)

	var value string
	err := p.pool.QueryRow(ctx, q, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	q := fmt.Sprintf(`
insert into %s (key, value, updated_at) values ($1, $2, $3)
on conflict (key) do update set value = excluded.value, updated_at = excluded.updated_at`, p.table)

	_, err := p.pool.Exec(ctx, q, key, string(value), time.Now().UTC())
	return err
}

func (p *PostgresKV) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresKV) Close() error {
	p.pool.Close()
	return nil
}
