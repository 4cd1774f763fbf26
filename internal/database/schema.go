package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FoodEntriesTable is the unqualified name of the food log table
const FoodEntriesTable = "food_entries"

// SchemaStatements returns the DDL that creates the food log namespace, table and index.
// Every statement is idempotent.
func SchemaStatements(schema string) []string {
	ns := pgx.Identifier{schema}.Sanitize()
	table := pgx.Identifier{schema, FoodEntriesTable}.Sanitize()
	index := pgx.Identifier{FoodEntriesTable + "_user_logged_at_idx"}.Sanitize()

	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, ns),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    food_text TEXT NOT NULL,
    meal_type VARCHAR(20) NOT NULL DEFAULT 'snack',
    logged_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (user_id, logged_at DESC)`, index, table),
	}
}

// EnsureSchema applies SchemaStatements inside one transaction
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range SchemaStatements(schema) {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: bootstrap schema %s: %v", ErrStoreUnavailable, schema, err)
	}
	return nil
}
