package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pmorten/timetrail/internal/clock"
	"github.com/pmorten/timetrail/internal/db"
	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/importer"
	"github.com/pmorten/timetrail/internal/repository"
)

type importService struct {
	prefs repository.PreferencesRepo
	uow   db.UnitOfWork
	clock clock.Clock
	obs   OpObserver
}

func NewImportService(prefs repository.PreferencesRepo, uow db.UnitOfWork, clk clock.Clock, observers ...OpObserver) ImportService {
	return &importService{prefs: prefs, uow: uow, clock: clk, obs: opObserverOrNoop(observers)}
}

// ImportEntries inserts stopped entries for every non-duplicate row, all in
// one transaction so a bad row rolls the whole file back. A row is a
// duplicate iff an entry with the same title and the same start instant
// (resolved through the owner's configured timezone) already exists; it is
// skipped, not overwritten.
func (s *importService) ImportEntries(ctx context.Context, ownerID string, rows []importer.Row) (result *ImportResult, err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "import.entries", ownerID, startedAt, err,
			map[string]any{"rows": len(rows)})
	}()

	prefs, err := s.prefs.Get(ctx, ownerID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		prefs = domain.DefaultPreferences(ownerID)
	}
	loc := prefs.Location()
	now := s.clock.Now()

	result = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		for _, row := range rows {
			start, end, convErr := importer.Convert(row, loc)
			if convErr != nil {
				return convErr
			}
			if valErr := importer.Validate(row, start, end); valErr != nil {
				return valErr
			}

			exists, exErr := txEntries.ExistsByOwnerTitleStart(ctx, ownerID, row.Description, start)
			if exErr != nil {
				return exErr
			}
			if exists {
				result.Skipped++
				continue
			}

			entry := &domain.TimeEntry{
				ID:        uuid.New().String(),
				OwnerID:   ownerID,
				Title:     row.Description,
				StartTime: start,
				Tags:      domain.NormalizeTags(row.Tags),
				CreatedAt: now,
				UpdatedAt: now,
			}
			entry.Stop(end)
			if crErr := txEntries.Create(ctx, entry); crErr != nil {
				return crErr
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
