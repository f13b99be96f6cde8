package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		emails JSONB NOT NULL DEFAULT '[]',
		phones JSONB NOT NULL DEFAULT '[]',
		raw_text TEXT NOT NULL DEFAULT '',
		skills JSONB NOT NULL DEFAULT '[]',
		skills_by_category JSONB NOT NULL DEFAULT '{}',
		experience_years DOUBLE PRECISION,
		education JSONB NOT NULL DEFAULT '[]',
		work_history JSONB NOT NULL DEFAULT '[]',
		embedding JSONB,
		file_path TEXT NOT NULL DEFAULT '',
		parsed_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		required_skills JSONB NOT NULL DEFAULT '[]',
		nice_to_have_skills JSONB NOT NULL DEFAULT '[]',
		embedding JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables when they do not exist yet. It is safe to
// run on every startup.
func EnsureSchema(ctx context.Context, db DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
