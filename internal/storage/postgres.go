package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/config"
)

// Sentinel errors returned by the stores. Callers match with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// NewPool connects a pgx pool using the database configuration and
// verifies connectivity with a ping.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "skillbarter-backend"
	pc.MaxConns = cfg.Database.MaxConns
	pc.MinConns = cfg.Database.MinConns
	pc.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

// schema is kept small enough to bootstrap in place. The unique
// indexes on username and email are the actual uniqueness guarantee;
// application-level checks are best-effort pre-checks.
const schema = `
create table if not exists users (
	id            uuid primary key,
	username      text not null unique,
	fname         text not null,
	lname         text not null,
	email         text not null unique,
	password_hash text not null,
	bio           text not null default '',
	skills        uuid[] not null default '{}',
	interests     uuid[] not null default '{}',
	matches       uuid[] not null default '{}',
	notifications jsonb not null default '[]',
	created_at    timestamptz not null default now(),
	updated_at    timestamptz not null default now()
);

create table if not exists skills (
	id   uuid primary key,
	name text not null unique
);

create table if not exists likes (
	from_id    uuid not null references users(id),
	to_id      uuid not null references users(id),
	created_at timestamptz not null default now(),
	primary key (from_id, to_id)
);
`

// Migrate creates the schema if missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
