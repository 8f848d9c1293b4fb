// Command init_schema creates the Postgres tables the recommendation
// service depends on: users, style_preferences, and closet_items.
//
// Usage:
//
//	go run cmd/tools/init_schema/main.go
//
// Requires DATABASE_URL environment variable to be set. The statements
// are idempotent, so re-running against an existing database is safe.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []struct {
	name string
	sql  string
}{
	{
		name: "users table",
		sql: `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			password_hash TEXT,
			password_set BOOLEAN NOT NULL DEFAULT FALSE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "style_preferences table",
		sql: `
		CREATE TABLE IF NOT EXISTS style_preferences (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			colors JSONB NOT NULL DEFAULT '[]',
			styles JSONB NOT NULL DEFAULT '[]',
			fabrics JSONB NOT NULL DEFAULT '[]',
			occasions JSONB NOT NULL DEFAULT '[]',
			body_type TEXT,
			top_size TEXT,
			bottom_size TEXT,
			shoe_size TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "closet_items table",
		sql: `
		CREATE TABLE IF NOT EXISTS closet_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			subcategory TEXT,
			brand TEXT,
			color TEXT,
			size TEXT,
			is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
			added_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "closet_items user index",
		sql:  `CREATE INDEX IF NOT EXISTS idx_closet_items_user_id ON closet_items(user_id)`,
	},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("=== Schema Initialization ===")
	fmt.Println()

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt.sql); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create %s: %v\n", stmt.name, err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", stmt.name)
	}

	fmt.Println()
	fmt.Println("Schema initialization complete.")
}
