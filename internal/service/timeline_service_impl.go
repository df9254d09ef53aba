package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmorten/timetrail/internal/clock"
	"github.com/pmorten/timetrail/internal/db"
	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/repository"
)

type timelineService struct {
	entries repository.EntryRepo
	prefs   repository.PreferencesRepo
	uow     db.UnitOfWork
	clock   clock.Clock
	locks   *ownerLocks
	obs     OpObserver
}

// NewTimelineService wires the engine. The clock is sampled exactly once per
// operation; tests pass a fixed clock.
func NewTimelineService(entries repository.EntryRepo, prefs repository.PreferencesRepo, uow db.UnitOfWork, clk clock.Clock, observers ...OpObserver) TimelineService {
	return &timelineService{
		entries: entries,
		prefs:   prefs,
		uow:     uow,
		clock:   clk,
		locks:   newOwnerLocks(),
		obs:     opObserverOrNoop(observers),
	}
}

func (s *timelineService) Start(ctx context.Context, ownerID, title string, tags []string) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() { observeOp(ctx, s.obs, "timeline.start", ownerID, startedAt, err, nil) }()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("starting entry: %w", ErrEmptyTitle)
	}

	if _, err := s.entries.FindActiveByOwner(ctx, ownerID); err == nil {
		return nil, fmt.Errorf("owner %s: %w", ownerID, ErrActiveEntryExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	entry = &domain.TimeEntry{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		StartTime: now,
		Tags:      domain.NormalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrActiveConflict) {
			// Lost a race against a writer outside our lock scope; the
			// store constraint is authoritative.
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrActiveEntryExists)
		}
		return nil, err
	}
	return entry, nil
}

func (s *timelineService) Stop(ctx context.Context, ownerID string) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() { observeOp(ctx, s.obs, "timeline.stop", ownerID, startedAt, err, nil) }()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	active, err := s.entries.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrNoActiveEntry)
		}
		return nil, err
	}

	now := s.clock.Now()
	active.Stop(now)
	active.UpdatedAt = now
	if err := s.entries.Update(ctx, active); err != nil {
		return nil, err
	}
	return active, nil
}

func (s *timelineService) ContinueFrom(ctx context.Context, ownerID, templateEntryID string) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "timeline.continue", ownerID, startedAt, err,
			map[string]any{"template_id": templateEntryID})
	}()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	now := s.clock.Now()
	var created *domain.TimeEntry

	// Stop-then-start commits as one unit; a third reader never observes
	// the intermediate idle state.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)

		template, err := txEntries.GetByID(ctx, templateEntryID)
		if err != nil {
			return err
		}
		if template.OwnerID != ownerID {
			return fmt.Errorf("time entry %s: %w", templateEntryID, repository.ErrNotFound)
		}

		active, err := txEntries.FindActiveByOwner(ctx, ownerID)
		switch {
		case err == nil:
			active.Stop(now)
			active.UpdatedAt = now
			if err := txEntries.Update(ctx, active); err != nil {
				return err
			}
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		created = &domain.TimeEntry{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Title:     template.Title,
			StartTime: now,
			Tags:      append([]string(nil), template.Tags...),
			CreatedAt: now,
			UpdatedAt: now,
		}
		return txEntries.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *timelineService) Edit(ctx context.Context, ownerID, entryID string, patch EntryPatch) (entry *domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "timeline.edit", ownerID, startedAt, err,
			map[string]any{"entry_id": entryID})
	}()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	current, err := s.getOwned(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, fmt.Errorf("editing entry %s: %w", entryID, ErrEmptyTitle)
		}
	}

	start := current.StartTime
	if patch.StartTime != nil {
		start = patch.StartTime.UTC()
	}

	end := current.EndTime
	if patch.EndTime != nil {
		u := patch.EndTime.UTC()
		end = &u
	}

	// The whole edit is rejected on any violation; no partial field updates.
	now := s.clock.Now()
	if start.After(now) {
		return nil, fmt.Errorf("editing entry %s: %w", entryID, ErrFutureStart)
	}
	if end != nil && end.Before(start) {
		return nil, fmt.Errorf("editing entry %s: %w", entryID, ErrEndBeforeStart)
	}

	if title == current.Title && start.Equal(current.StartTime) && sameEnd(end, current.EndTime) {
		// Resolved values match the stored ones; edits are idempotent.
		return current, nil
	}

	current.Title = title
	current.StartTime = start
	current.EndTime = end
	current.UpdatedAt = now
	if err := s.entries.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *timelineService) Delete(ctx context.Context, ownerID, entryID string) (err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "timeline.delete", ownerID, startedAt, err,
			map[string]any{"entry_id": entryID})
	}()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	if _, err := s.getOwned(ctx, ownerID, entryID); err != nil {
		return err
	}
	return s.entries.Delete(ctx, entryID)
}

func (s *timelineService) ListRecent(ctx context.Context, ownerID string, limit int) (entries []*domain.TimeEntry, err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "timeline.list_recent", ownerID, startedAt, err,
			map[string]any{"limit": limit})
	}()

	if limit <= 0 {
		limit = 20
	}
	return s.entries.ListByOwner(ctx, ownerID, limit)
}

// getOwned loads an entry and hides other owners' entries behind NotFound.
func (s *timelineService) getOwned(ctx context.Context, ownerID, entryID string) (*domain.TimeEntry, error) {
	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if e.OwnerID != ownerID {
		return nil, fmt.Errorf("time entry %s: %w", entryID, repository.ErrNotFound)
	}
	return e, nil
}

func sameEnd(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
