package database

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"bank-assistant/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps one pooled connection to a logical store. Two instances exist for
// the lifetime of the process: the ledger store and the identity store. They
// are created once at startup and shared across requests; request handling
// code must never open its own connection.
type DB struct {
	*gorm.DB
	name      string
	config    *config.StoreConfig
	closeOnce sync.Once
	closeErr  error
}

func New(name string, cfg *config.StoreConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s store: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB for %s store: %w", name, err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{
		DB:     db,
		name:   name,
		config: cfg,
	}, nil
}

// Name returns the logical store name ("ledger" or "identity").
func (db *DB) Name() string {
	return db.name
}

// Probe verifies the store is reachable with a connect-and-trivial-query
// check. Each attempt races against the configured timeout; failed attempts
// back off linearly (base delay times the attempt number). Exhausting all
// attempts returns false rather than an error: reachability is a soft
// signal and the caller decides whether it is fatal.
func (db *DB) Probe(ctx context.Context) bool {
	attempts := db.config.ProbeAttempts
	if attempts <= 0 {
		attempts = 3
	}
	timeout := db.config.ProbeTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		slog.Error("store probe failed to acquire pool",
			"store", db.name,
			"error", err)
		return false
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		err = sqlDB.PingContext(attemptCtx)
		if err == nil {
			// Trivial query so a half-open connection does not pass.
			err = db.DB.WithContext(attemptCtx).Raw("SELECT 1").Row().Err()
		}
		cancel()

		if err == nil {
			return true
		}

		slog.Warn("store probe attempt failed",
			"store", db.name,
			"attempt", attempt,
			"max_attempts", attempts,
			"timeout", timeout.String(),
			"error", err)

		if attempt < attempts {
			time.Sleep(db.config.ProbeBackoff * time.Duration(attempt))
		}
	}

	return false
}

// Close releases the underlying connection pool. Safe to call more than
// once; only the first call does work.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			db.closeErr = err
			return
		}
		db.closeErr = sqlDB.Close()
	})
	return db.closeErr
}

// HealthCheck pings the store once, without retries.
func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize opens a store connection and brings its schema up to date. SQL
// migrations run first when enabled; GORM AutoMigrate is the fallback.
func Initialize(name string, cfg *config.StoreConfig, schemaModels ...any) (*DB, error) {
	db, err := New(name, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB for %s store: %w", name, err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, name); err != nil {
		log.Printf("Warning: migration runner failed for %s store: %v", name, err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.DB.AutoMigrate(schemaModels...); err != nil {
			return nil, fmt.Errorf("failed to migrate %s store: %w", name, err)
		}
	}

	log.Printf("%s store initialized successfully", name)

	return db, nil
}
