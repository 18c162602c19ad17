package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps cheap process-wide counters for the /metrics endpoint.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	mirrorWrites    uint64
	mirrorErrors    uint64
	mirrorDropped   uint64
	refreshes       uint64
	refreshErrors   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordMirrorWrite(err error) {
	atomic.AddUint64(&c.mirrorWrites, 1)
	if err != nil {
		atomic.AddUint64(&c.mirrorErrors, 1)
	}
}

func (c *Collector) RecordMirrorDrop() {
	atomic.AddUint64(&c.mirrorDropped, 1)
}

func (c *Collector) RecordRefresh(err error) {
	atomic.AddUint64(&c.refreshes, 1)
	if err != nil {
		atomic.AddUint64(&c.refreshErrors, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        errs,
		"rateLimitedTotal":   limited,
		"avgDurationMs":      avg,
		"totalDurationMs":    totalMs,
		"mirrorWritesTotal":  atomic.LoadUint64(&c.mirrorWrites),
		"mirrorErrorsTotal":  atomic.LoadUint64(&c.mirrorErrors),
		"mirrorDroppedTotal": atomic.LoadUint64(&c.mirrorDropped),
		"refreshesTotal":     atomic.LoadUint64(&c.refreshes),
		"refreshErrorsTotal": atomic.LoadUint64(&c.refreshErrors),
	}
}
