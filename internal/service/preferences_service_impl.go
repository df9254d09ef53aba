package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmorten/timetrail/internal/clock"
	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/repository"
)

type preferencesService struct {
	prefs repository.PreferencesRepo
	clock clock.Clock
}

func NewPreferencesService(prefs repository.PreferencesRepo, clk clock.Clock) PreferencesService {
	return &preferencesService{prefs: prefs, clock: clk}
}

func (s *preferencesService) Get(ctx context.Context, ownerID string) (*domain.UserPreferences, error) {
	p, err := s.prefs.Get(ctx, ownerID)
	if err != nil {
		if isNotFound(err) {
			return domain.DefaultPreferences(ownerID), nil
		}
		return nil, err
	}
	return p, nil
}

func (s *preferencesService) Update(ctx context.Context, p *domain.UserPreferences) error {
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", p.Timezone, err)
	}
	if p.StartOfWeek < time.Sunday || p.StartOfWeek > time.Saturday {
		return fmt.Errorf("invalid start of week %d", p.StartOfWeek)
	}
	p.UpdatedAt = s.clock.Now()
	return s.prefs.Upsert(ctx, p)
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
