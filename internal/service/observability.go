package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OpEvent captures lightweight execution telemetry for one engine operation.
type OpEvent struct {
	Name      string
	OwnerID   string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// OpObserver receives engine operation events.
type OpObserver interface {
	ObserveOp(ctx context.Context, event OpEvent)
}

// NoopOpObserver ignores all events.
type NoopOpObserver struct{}

func (NoopOpObserver) ObserveOp(context.Context, OpEvent) {}

type logOpObserver struct {
	logger *slog.Logger
}

// NewLogOpObserver writes engine operation events to the provided writer.
func NewLogOpObserver(w io.Writer) OpObserver {
	if w == nil {
		return NoopOpObserver{}
	}
	return &logOpObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logOpObserver) ObserveOp(ctx context.Context, event OpEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"op", event.Name,
		"owner_id", event.OwnerID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "timeline_op", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "timeline_op", attrs...)
}

func opObserverOrNoop(observers []OpObserver) OpObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopOpObserver{}
}

// observeOp reports one finished operation to the observer.
func observeOp(ctx context.Context, obs OpObserver, name, ownerID string, startedAt time.Time, err error, fields map[string]any) {
	obs.ObserveOp(ctx, OpEvent{
		Name:      name,
		OwnerID:   ownerID,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: startedAt,
	})
}
