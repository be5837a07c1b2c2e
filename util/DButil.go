package util

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skilltracker/config"
	"skilltracker/model"
)

// InitDB opens the configured database, creates it on first run (postgres),
// migrates the schema and sizes the connection pool.
func InitDB(cfg config.DB) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres", "":
		if err := ensurePostgresDatabase(cfg); err != nil {
			return nil, err
		}
		dialector = postgres.Open(cfg.DSN(cfg.Name))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := OpenDB(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to application database: %w", err)
	}

	slog.Info("running AutoMigrate")
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB object: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	slog.Info("database connected, migrated, and pool configured", "driver", cfg.Driver)
	return db, nil
}

// OpenDB opens a gorm handle with driver errors translated to gorm sentinels.
func OpenDB(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Certificate{},
		&model.Skill{},
		&model.Project{},
	)
}

// ensurePostgresDatabase connects to the maintenance database and creates
// the application database if it does not exist yet.
func ensurePostgresDatabase(cfg config.DB) error {
	tempDB, err := gorm.Open(postgres.Open(cfg.DSN("postgres")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres instance: %w", err)
	}
	defer func() {
		if sqlDB, err := tempDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var exists bool
	err = tempDB.Raw("SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = ?)", cfg.Name).
		Scan(&exists).Error
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		slog.Info("database not found, creating", "name", cfg.Name)
		if err := tempDB.Exec(fmt.Sprintf("CREATE DATABASE %q", cfg.Name)).Error; err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}
	return nil
}
