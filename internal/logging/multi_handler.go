package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// MultiHandler builds a handler that forwards each record to every
// non-nil handler whose level admits it. With no usable handlers it
// discards everything.
func MultiHandler(handlers ...slog.Handler) slog.Handler {
	fan := fanout{}
	for _, h := range handlers {
		if h != nil {
			fan.targets = append(fan.targets, h)
		}
	}
	if len(fan.targets) == 0 {
		return slog.NewTextHandler(io.Discard, nil)
	}
	return fan
}

type fanout struct {
	targets []slog.Handler
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f.targets {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		// Each handler gets its own clone; handlers may mutate the record.
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := fanout{targets: make([]slog.Handler, len(f.targets))}
	for i, h := range f.targets {
		next.targets[i] = h.WithAttrs(attrs)
	}
	return next
}

func (f fanout) WithGroup(name string) slog.Handler {
	next := fanout{targets: make([]slog.Handler, len(f.targets))}
	for i, h := range f.targets {
		next.targets[i] = h.WithGroup(name)
	}
	return next
}
