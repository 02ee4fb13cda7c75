package store

import (
	"context"
	"time"
)

// Metrics receives store operation observations. Implemented by the
// metrics service; a nil Metrics disables instrumentation.
type Metrics interface {
	RecordRead(hit bool, duration time.Duration)
	RecordWrite(err error, duration time.Duration)
}

type instrumented struct {
	next    Store
	metrics Metrics
}

// WithMetrics decorates a Store so every read and write is observed.
func WithMetrics(s Store, m Metrics) Store {
	if m == nil {
		return s
	}
	return &instrumented{next: s, metrics: m}
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := i.next.Get(ctx, key)
	i.metrics.RecordRead(err == nil, time.Since(start))
	return value, err
}

func (i *instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := i.next.Set(ctx, key, value)
	i.metrics.RecordWrite(err, time.Since(start))
	return err
}

func (i *instrumented) Remove(ctx context.Context, key string) error {
	return i.next.Remove(ctx, key)
}

func (i *instrumented) Clear(ctx context.Context) error {
	return i.next.Clear(ctx)
}
