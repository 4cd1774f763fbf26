package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"HEYNOM_BACK-END/internal/config"
)

// ErrStoreUnavailable marks configuration or connection failures of the store.
// It is fatal at startup.
var ErrStoreUnavailable = errors.New("store unavailable")

// pingTimeout bounds the startup connectivity check
const pingTimeout = 20 * time.Second

// PoolConfig translates the database configuration into a pgxpool config
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("%w: parse dsn: %v", ErrStoreUnavailable, err)
	}

	// simple protocol is required behind PgBouncer (Supabase pooler :6543)
	if cfg.Database.SimpleProtocol {
		poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "heynom-backend"
	poolCfg.ConnConfig.RuntimeParams["search_path"] = cfg.Database.Schema + ",public"
	if cfg.Database.QueryTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprintf("%d", cfg.Database.QueryTimeout.Milliseconds())
	}
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	return poolCfg, nil
}

// Connect opens the connection pool and pings it once.
// The caller owns the pool and must Close it on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStoreUnavailable, err)
	}

	log.Printf("Connected to database %s:%d (schema %s, max conns %d)",
		poolCfg.ConnConfig.Host, poolCfg.ConnConfig.Port, cfg.Database.Schema, poolCfg.MaxConns)
	return pool, nil
}
