package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load loads configuration from environment variables. The result is passed
// to constructors explicitly; there is no package-level instance.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "monevo.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "monevo"),
		DBPassword: getEnv("DB_PASSWORD", "monevo"),
		DBName:     getEnv("DB_NAME", "monevo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
