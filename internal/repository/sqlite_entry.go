package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmorten/timetrail/internal/db"
	"github.com/pmorten/timetrail/internal/domain"
)

const entryColumns = `id, owner_id, title, start_time, end_time, tags, created_at, updated_at`

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	tags, err := tagsToJSON(e.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO time_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.OwnerID,
		e.Title,
		e.StartTime.UTC().Format(timeLayout),
		nullableTimeToString(e.EndTime),
		tags,
		e.CreatedAt.UTC().Format(timeLayout),
		e.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if isUniqueViolation(err, "time_entries.owner_id") {
			return fmt.Errorf("inserting time entry: %w", ErrActiveConflict)
		}
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) FindActiveByOwner(ctx context.Context, ownerID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE owner_id = ? AND end_time IS NULL`
	row := r.db.QueryRowContext(ctx, query, ownerID)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) ListByOwnerInRange(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	// Overlap: the entry starts before the range ends and either still runs
	// or ends at/after the range start.
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE owner_id = ?
		  AND start_time < ?
		  AND (end_time IS NULL OR end_time >= ?)
		ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query,
		ownerID,
		to.UTC().Format(timeLayout),
		from.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("listing entries in range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE owner_id = ? ORDER BY start_time DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing entries by owner: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ExistsByOwnerTitleStart(ctx context.Context, ownerID, title string, start time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM time_entries
		WHERE owner_id = ? AND title = ? AND start_time = ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, ownerID, title, start.UTC().Format(timeLayout)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for duplicate entry: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	tags, err := tagsToJSON(e.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE time_entries
		SET title = ?, start_time = ?, end_time = ?, tags = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.StartTime.UTC().Format(timeLayout),
		nullableTimeToString(e.EndTime),
		tags,
		e.UpdatedAt.UTC().Format(timeLayout),
		e.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "time_entries.owner_id") {
			return fmt.Errorf("updating time entry: %w", ErrActiveConflict)
		}
		return fmt.Errorf("updating time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var startStr, createdStr, updatedStr, tagsStr string
	var endStr sql.NullString

	err := row.Scan(&e.ID, &e.OwnerID, &e.Title, &startStr, &endStr, &tagsStr, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	return r.populateEntry(&e, startStr, endStr, tagsStr, createdStr, updatedStr)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var startStr, createdStr, updatedStr, tagsStr string
		var endStr sql.NullString

		err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &startStr, &endStr, &tagsStr, &createdStr, &updatedStr)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}

		entry, popErr := r.populateEntry(&e, startStr, endStr, tagsStr, createdStr, updatedStr)
		if popErr != nil {
			return nil, popErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields on a TimeEntry after scanning raw strings.
func (r *SQLiteEntryRepo) populateEntry(e *domain.TimeEntry, startStr string, endStr sql.NullString, tagsStr, createdStr, updatedStr string) (*domain.TimeEntry, error) {
	var err error
	e.StartTime, err = time.Parse(timeLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	e.StartTime = e.StartTime.UTC()

	e.EndTime, err = parseNullableTime(endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}

	e.Tags, err = tagsFromJSON(tagsStr)
	if err != nil {
		return nil, err
	}

	e.CreatedAt, err = time.Parse(timeLayout, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.CreatedAt = e.CreatedAt.UTC()

	e.UpdatedAt, err = time.Parse(timeLayout, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	e.UpdatedAt = e.UpdatedAt.UTC()

	return e, nil
}
