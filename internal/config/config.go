package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBPath     string

	JWTSecret string
}

func Load() *Config {
	// Optional .env file for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("ENV", "development"),

		DBDriver:   getenv("DB_DRIVER", "mysql"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "note_taking_app"),
		DBPath:     getenv("DB_PATH", "notes.db"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
	}
}

// MySQLDSN builds the driver DSN. parseTime is required so DATETIME
// columns scan into time.Time; clientFoundRows makes RowsAffected
// count matched rows rather than changed rows, so a no-op update of
// an existing row is not mistaken for a missing one.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
