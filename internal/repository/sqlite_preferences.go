package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmorten/timetrail/internal/db"
	"github.com/pmorten/timetrail/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context, ownerID string) (*domain.UserPreferences, error) {
	query := `SELECT owner_id, timezone, start_of_week, locale, updated_at
		FROM user_preferences WHERE owner_id = ?`
	row := r.db.QueryRowContext(ctx, query, ownerID)

	var p domain.UserPreferences
	var startOfWeek int
	var updatedStr string
	err := row.Scan(&p.OwnerID, &p.Timezone, &startOfWeek, &p.Locale, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user preferences: %w", err)
	}
	p.StartOfWeek = time.Weekday(startOfWeek)
	p.UpdatedAt, err = time.Parse(timeLayout, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.UserPreferences) error {
	query := `INSERT OR REPLACE INTO user_preferences (owner_id, timezone, start_of_week, locale, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.OwnerID,
		p.Timezone,
		int(p.StartOfWeek),
		p.Locale,
		p.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting user preferences: %w", err)
	}
	return nil
}
