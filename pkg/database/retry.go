package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/skystack/console/pkg/config"
)

// RetryConfig controls connection retry behavior at startup, when the
// database may still be coming up.
type RetryConfig struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	BackoffMultiple float64
}

// RetryConfigFromConfig creates a RetryConfig from the application configuration.
func RetryConfigFromConfig(cfg *config.Config) RetryConfig {
	return RetryConfig{
		MaxAttempts:     cfg.Database.Retry.MaxAttempts,
		InitialDelay:    cfg.Database.Retry.InitialDelay,
		MaxDelay:        cfg.Database.Retry.MaxDelay,
		BackoffMultiple: cfg.Database.Retry.BackoffMultiple,
	}
}

// NewConnectionWithRetry connects with exponential backoff, blocking until a
// connection succeeds, the attempts run out, or the context is cancelled.
func NewConnectionWithRetry(ctx context.Context, cfg *config.Config, retry RetryConfig) (*DB, error) {
	var lastErr error
	delay := retry.InitialDelay

	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("database connection cancelled: %w", err)
		}

		db, err := NewConnection(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("Database connection attempt %d/%d failed: %v", attempt, retry.MaxAttempts, err)

		if attempt == retry.MaxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("database connection cancelled during retry delay: %w", ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * retry.BackoffMultiple)
		if delay > retry.MaxDelay {
			delay = retry.MaxDelay
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts, last error: %w",
		retry.MaxAttempts, lastErr)
}
