package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the case store schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id          TEXT PRIMARY KEY,
		patient_id  TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS cases (
		id          TEXT PRIMARY KEY,
		patient_ref TEXT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		UNIQUE(patient_ref, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cases_patient ON cases(patient_ref)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		case_id     TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_case ON plans(case_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id                TEXT PRIMARY KEY,
		plan_id           TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		roi_name          TEXT NOT NULL,
		criteria          TEXT NOT NULL,
		kind              TEXT NOT NULL,
		acceptance_level  REAL NOT NULL,
		parameter_value   REAL NOT NULL,
		recorded_value    REAL,
		recorded_achieved INTEGER,
		order_index       INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_plan ON goals(plan_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS dvh_points (
		plan_id   TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		roi_name  TEXT NOT NULL,
		seq       INTEGER NOT NULL,
		dose_cgy  REAL NOT NULL,
		volume    REAL NOT NULL CHECK(volume >= 0 AND volume <= 1),
		PRIMARY KEY (plan_id, roi_name, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS current_context (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		case_id    TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		updated_at TEXT NOT NULL
	)`,
}
