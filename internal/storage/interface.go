package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no link matches the given code.
var ErrNotFound = errors.New("link not found")

// ErrConflict is returned when a code is already taken.
var ErrConflict = errors.New("code conflict")

// Storage is the contract every link backend implements.
type Storage interface {
	// SaveLink persists a new link record and returns it with its ID set.
	SaveLink(ctx context.Context, record LinkRecord) (*LinkRecord, error)

	// FindByCode matches against both the short code and the custom code,
	// case-sensitively. When more than one row matches it returns the
	// oldest by creation time rather than erroring.
	FindByCode(ctx context.Context, code string) (*LinkRecord, error)

	// InsertClick appends one click record.
	InsertClick(ctx context.Context, click ClickRecord) error

	// IncrementClicks atomically bumps the click counter and stamps the
	// last-clicked time.
	IncrementClicks(ctx context.Context, linkID string, at time.Time) error

	// PingContext reports backend health.
	PingContext(ctx context.Context) error
}
