package database

import (
	"fmt"
	"time"

	"monevo/internal/logger"
	"monevo/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db         *gorm.DB
	driver     string
	migrateURL string
}

// NewManager creates a new database manager. TranslateError is required so
// that duplicate-key violations surface as gorm.ErrDuplicatedKey regardless
// of the driver.
func NewManager(config *Config) (*Manager, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	var err error
	switch config.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true, // Required for connection poolers; harmless for direct connections
		}), gormConfig)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == "sqlite" {
		// sqlite serializes writers; more connections just contend on the lock
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, driver: config.Driver, migrateURL: config.MigrateURL()}, nil
}

// Migrate brings the schema up to date. Postgres applies the versioned SQL
// migrations from the migrations/ directory; sqlite auto-migrates from the
// model definitions, which keeps local files and test databases in sync
// without a second SQL dialect.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	if m.driver == "sqlite" {
		if err := m.db.AutoMigrate(&models.Budget{}, &models.Movement{}); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Get().Info("Database migrations completed successfully")
		return nil
	}

	mig, err := migrate.New("file://migrations", m.migrateURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
