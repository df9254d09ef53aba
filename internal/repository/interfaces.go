package repository

import (
	"context"
	"time"

	"github.com/pmorten/timetrail/internal/domain"
)

type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// FindActiveByOwner returns the owner's running entry, or ErrNotFound
	// when the owner is idle.
	FindActiveByOwner(ctx context.Context, ownerID string) (*domain.TimeEntry, error)
	// ListByOwnerInRange returns entries overlapping [from, to), newest
	// start first. Running entries whose start precedes to are included.
	ListByOwnerInRange(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.TimeEntry, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*domain.TimeEntry, error)
	// ExistsByOwnerTitleStart reports whether an entry with the same title
	// and start instant already exists; the import dedup check.
	ExistsByOwnerTitleStart(ctx context.Context, ownerID, title string, start time.Time) (bool, error)
	Update(ctx context.Context, e *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

type PreferencesRepo interface {
	Get(ctx context.Context, ownerID string) (*domain.UserPreferences, error)
	Upsert(ctx context.Context, p *domain.UserPreferences) error
}
