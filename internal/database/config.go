package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds database configuration. Driver selects between a local
// sqlite file and a postgres server; the postgres fields are ignored for
// sqlite.
type Config struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Driver:     getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "monevo.db"),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "monevo"),
		Password:   getEnv("DB_PASSWORD", "monevo"),
		DBName:     getEnv("DB_NAME", "monevo"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
	}, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	return c.SQLitePath
}

// MigrateURL returns the postgres connection URL in the form golang-migrate
// expects. Only postgres uses versioned SQL migrations.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
