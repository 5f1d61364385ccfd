package modelgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFetch is called after each document fetch.
	// size is the number of bytes fetched, err is nil if successful.
	RecordFetch(duration time.Duration, size int, err error)

	// RecordLoad is called after each dataset load.
	// total is the number of records loaded, failed the number excluded,
	// warned the number of entries with warnings.
	RecordLoad(total, failed, warned int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFetch(time.Duration, int, error)   {}
func (NoopMetricsCollector) RecordLoad(int, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FetchCount      atomic.Int64
	FetchErrors     atomic.Int64
	FetchBytes      atomic.Int64
	FetchTotalNanos atomic.Int64
	LoadCount       atomic.Int64
	LoadRecords     atomic.Int64
	LoadFailed      atomic.Int64
	LoadWarned      atomic.Int64
	LoadTotalNanos  atomic.Int64
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(duration time.Duration, size int, err error) {
	b.FetchCount.Add(1)
	b.FetchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FetchErrors.Add(1)
		return
	}
	b.FetchBytes.Add(int64(size))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(total, failed, warned int, duration time.Duration) {
	b.LoadCount.Add(1)
	b.LoadRecords.Add(int64(total))
	b.LoadFailed.Add(int64(failed))
	b.LoadWarned.Add(int64(warned))
	b.LoadTotalNanos.Add(duration.Nanoseconds())
}
