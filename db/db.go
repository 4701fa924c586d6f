package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the gorm handle for the workspaces and settings collections.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: failed to connect: %w", err)
	}
	return New(gdb)
}

// New builds a Store on an already-open gorm handle and migrates the schema.
// Tests use it with an in-memory sqlite handle.
func New(gdb *gorm.DB) (*Store, error) {
	if err := gdb.AutoMigrate(&Workspace{}, &TeamSettings{}); err != nil {
		return nil, fmt.Errorf("db: migration failed: %w", err)
	}
	return &Store{db: gdb}, nil
}
