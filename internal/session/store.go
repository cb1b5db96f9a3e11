package session

import (
	"context"

	"bmi-calculator/internal/health"
)

// Store keeps calculation history per session for the lifetime of the
// session only.
type Store interface {
	// Append adds a record to the end of the session's history.
	Append(ctx context.Context, sessionID string, rec health.Record) error
	// List returns the session's history, most recent first.
	List(ctx context.Context, sessionID string) ([]health.Record, error)
	// Reset clears the session's history.
	Reset(ctx context.Context, sessionID string) error
}
