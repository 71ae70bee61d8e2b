package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL CHECK(color IN ('purple','teal','coral')),
		order_index INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chapters (
		subject_id TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		ordinal    INTEGER NOT NULL CHECK(ordinal > 0),
		name       TEXT NOT NULL,
		PRIMARY KEY (subject_id, ordinal)
	)`,
	`CREATE TABLE IF NOT EXISTS subtopics (
		order_index INTEGER PRIMARY KEY,
		label       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS decks (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		total       INTEGER NOT NULL CHECK(total >= 0),
		due         INTEGER NOT NULL CHECK(due >= 0),
		status      TEXT NOT NULL CHECK(status IN ('caught-up','has-due','critical')),
		color       TEXT NOT NULL,
		order_index INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		streak             INTEGER NOT NULL DEFAULT 0,
		rec_subject_id     TEXT NOT NULL DEFAULT '',
		rec_topic          TEXT NOT NULL DEFAULT '',
		rec_reviews        INTEGER NOT NULL DEFAULT 0,
		rec_estimated_time TEXT NOT NULL DEFAULT ''
	)`,
	`INSERT OR IGNORE INTO profile (id) VALUES ('default')`,
	`CREATE INDEX IF NOT EXISTS idx_chapters_subject ON chapters(subject_id)`,
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
