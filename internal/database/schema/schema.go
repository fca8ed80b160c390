package schema

import (
	"context"
	"fmt"

	"devconnect/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            uuid PRIMARY KEY,
		name          text NOT NULL,
		email         text NOT NULL UNIQUE,
		avatar        text NOT NULL DEFAULT '',
		password_hash text NOT NULL,
		created_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id             uuid PRIMARY KEY,
		user_id        uuid NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
		handle         text NOT NULL UNIQUE,
		status         text NOT NULL,
		skills         jsonb NOT NULL DEFAULT '[]',
		company        text NOT NULL DEFAULT '',
		website        text NOT NULL DEFAULT '',
		location       text NOT NULL DEFAULT '',
		bio            text NOT NULL DEFAULT '',
		githubusername text NOT NULL DEFAULT '',
		social         jsonb NOT NULL DEFAULT '{}',
		experience     jsonb NOT NULL DEFAULT '[]',
		education      jsonb NOT NULL DEFAULT '[]',
		created_at     timestamptz NOT NULL DEFAULT now(),
		updated_at     timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_handle ON profiles (handle)`,
}

// Ensure creates the tables the service needs. Idempotent; runs once at
// startup. The unique constraints on users.email and profiles.handle are the
// backstop for the check-then-create races in the usecases.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema ensure: %w", err)
		}
	}
	return nil
}
