package db

import (
	"context"
	"database/sql"
	"fmt"
	"go-transactions-api/config"
	"go-transactions-api/logger"
	"time"

	_ "github.com/lib/pq"
)

// DSN builds the lib/pq connection string for the configured database.
func DSN(withPassword bool) string {
	cfg := config.AppConfig.Database
	if !withPassword {
		return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.SSLMode)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

func Connect(ctx context.Context) (*sql.DB, error) {
	logger.Log.WithField("connection", DSN(false)).Info("Attempting to connect to the database")

	db, err := sql.Open("postgres", DSN(true))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		logger.Log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return db, nil
}
