// Package health reports process liveness: a fixed status, the uptime since
// process start and the current time. It reports on the process only, never
// on stored data.
package health

import "time"

// StatusOK is the only status a running process reports.
const StatusOK = "ok"

// Report is a point-in-time liveness snapshot.
type Report struct {
	Status    string
	Uptime    time.Duration
	Timestamp time.Time
}

// Reporter produces liveness reports relative to a fixed start instant.
type Reporter struct {
	startedAt time.Time
	now       func() time.Time
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClock replaces time.Now as the reporter's time source.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

// NewReporter returns a Reporter measuring uptime from startedAt. Pass a value
// taken from time.Now so the monotonic clock reading is used for uptime.
func NewReporter(startedAt time.Time, opts ...Option) *Reporter {
	r := &Reporter{startedAt: startedAt, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report returns the current liveness snapshot. It cannot fail.
func (r *Reporter) Report() Report {
	now := r.now()
	uptime := now.Sub(r.startedAt)
	if uptime < 0 {
		uptime = 0
	}
	return Report{
		Status:    StatusOK,
		Uptime:    uptime,
		Timestamp: now,
	}
}
