package database

import (
	"testing"

	"bank-assistant/internal/config"
	"bank-assistant/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupLedgerTestDB returns an in-memory store carrying the ledger schema.
func SetupLedgerTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDB(t, "ledger", &models.Transaction{})
}

// SetupIdentityTestDB returns an in-memory store carrying the identity schema.
func SetupIdentityTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDB(t, "identity", &models.User{})
}

func setupTestDB(t *testing.T, name string, schemaModels ...any) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB:   db,
		name: name,
		config: &config.StoreConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.DB.AutoMigrate(schemaModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}
