package db

import (
	"database/sql"
	"log"

	"github.com/note-taking-app/api/internal/config"
)

// Init opens the configured database, verifies the connection, creates
// the schema and seeds reference data. Failures here are fatal: the
// service cannot run without its database.
func Init(cfg *config.Config) *sql.DB {
	var conn *sql.DB
	switch cfg.DBDriver {
	case "sqlite3":
		conn = initSQLite(cfg.DBPath)
	default:
		conn = initMySQL(cfg)
	}

	conn.SetMaxOpenConns(7)

	seedCategories(conn)
	return conn
}

func seedCategories(db *sql.DB) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		log.Fatalf("Error counting categories: %v", err)
	}
	if count > 0 {
		return
	}

	seed := []struct {
		name, color, description string
	}{
		{"Ideas", "#FFE66D", "Sparks and things to explore later"},
		{"Personal", "#FF6B6B", "Everyday personal notes"},
		{"Shopping", "#95E1D3", "Lists and things to buy"},
		{"Study", "#1A535C", "Course notes and revision material"},
		{"Work", "#4ECDC4", "Work-related notes and reminders"},
	}
	for _, c := range seed {
		_, err := db.Exec(
			"INSERT INTO categories (name, color, description) VALUES (?, ?, ?)",
			c.name, c.color, c.description,
		)
		if err != nil {
			log.Fatalf("Error seeding categories: %v", err)
		}
	}
	log.Printf("Seeded %d default categories", len(seed))
}
