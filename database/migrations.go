package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures all required tables exist
// Note: In production, use a proper migration tool
func RunMigrations(db *sql.DB) error {
	log.Println("Checking database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			reference_id TEXT UNIQUE NOT NULL,
			patient_name TEXT NOT NULL,
			contact_number TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'confirmed',
			appointment_date DATE NOT NULL,
			pdf_path TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS conversation_history (
			id SERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversation_session
			ON conversation_history (session_id, timestamp)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
