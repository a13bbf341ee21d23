package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var schemas = map[string]string{
	DriverMySQL: `
	CREATE TABLE IF NOT EXISTS generation_log (
		id             BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id        VARCHAR(64) NOT NULL,
		length         INT NOT NULL,
		classes        VARCHAR(64) NOT NULL,
		strength_score INT NOT NULL,
		created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_log_user (user_id, created_at)
	)`,
	DriverSQLite: `
	CREATE TABLE IF NOT EXISTS generation_log (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id        TEXT NOT NULL,
		length         INTEGER NOT NULL,
		classes        TEXT NOT NULL,
		strength_score INTEGER NOT NULL,
		created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// NewDB creates a database connection pool for the given driver ("mysql" or "sqlite").
func NewDB(driver, dsn string) (*sql.DB, error) {
	if _, ok := schemas[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer; an in-memory database also exists per connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — continuing without DB", "driver", driver, "error", err)
	}

	return db, nil
}

// EnsureSchema creates the generation_log table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	ddl, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating generation_log: %w", err)
	}
	return nil
}
