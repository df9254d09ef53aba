package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/format"
	"github.com/pmorten/timetrail/internal/repository"
	"github.com/pmorten/timetrail/internal/timeline"
)

func (s *timelineService) ListWeek(ctx context.Context, ownerID string, ref time.Time, dir domain.WeekDirection) (view *WeekView, err error) {
	startedAt := time.Now()
	defer func() {
		observeOp(ctx, s.obs, "timeline.list_week", ownerID, startedAt, err,
			map[string]any{"direction": string(dir)})
	}()

	prefs, err := s.preferencesFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	loc := prefs.Location()
	now := s.clock.Now()

	start, end := timeline.WeekWindow(ref, loc, prefs.StartOfWeek)
	switch dir {
	case domain.WeekCurrent, "":
	case domain.WeekPrevious:
		start, end = timeline.ShiftWindow(start, loc, -1)
	case domain.WeekNext:
		start, end = timeline.ShiftWindow(start, loc, 1)
	default:
		return nil, fmt.Errorf("unknown week direction %q", dir)
	}

	entries, err := s.entries.ListByOwnerInRange(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	segments := timeline.SplitAll(entries, loc, now, start, end)
	buckets := timeline.GroupByDay(segments)
	today := timeline.LocalMidnight(now, loc)

	view = &WeekView{
		Start: start,
		End:   end,
		Label: format.WeekRangeLabel(start, end, prefs.Locale),
	}
	for _, bucket := range buckets {
		day := DayView{
			Date:         bucket.Date,
			Relation:     timeline.RelationTo(bucket.Date, today),
			Heading:      format.DayHeading(bucket.Date, prefs.Locale),
			Total:        bucket.Total(),
			TotalDisplay: format.Duration(bucket.Total()),
		}
		for _, seg := range bucket.Segments {
			sv := SegmentView{
				DaySegment:      seg,
				StartDisplay:    format.Clock(seg.Start, prefs.Locale),
				DurationDisplay: format.Duration(seg.Duration()),
			}
			if !seg.Active {
				// Running segments keep an empty end; the caller's
				// translation layer supplies the in-progress marker.
				sv.EndDisplay = format.Clock(seg.End, prefs.Locale)
			}
			day.Segments = append(day.Segments, sv)
		}
		view.Days = append(view.Days, day)
	}
	return view, nil
}

// preferencesFor reads the owner's stored preferences, falling back to the
// defaults when none are saved yet.
func (s *timelineService) preferencesFor(ctx context.Context, ownerID string) (*domain.UserPreferences, error) {
	prefs, err := s.prefs.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultPreferences(ownerID), nil
		}
		return nil, err
	}
	return prefs, nil
}
