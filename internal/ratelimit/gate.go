// Package ratelimit serializes requests to the Fiken API and paces them to
// the per-second limit.
package ratelimit

import (
	"context"
	"time"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// Clock returns the current time.
type Clock func() time.Time

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Gate admits one request at a time and at most limit requests in any
// window-long interval. The window keeps the start times of the most recent
// admitted requests, oldest first.
type Gate struct {
	sem    chan struct{}
	window []time.Time
	limit  int
	period time.Duration
	now    Clock
	sleep  Sleeper
	logger fiken.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces the wall clock.
func WithClock(now Clock) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// WithSleeper replaces the suspension primitive.
func WithSleeper(sleep Sleeper) Option {
	return func(g *Gate) {
		g.sleep = sleep
	}
}

// WithLimit sets the number of requests per window. Values outside
// 1..4 are clamped.
func WithLimit(limit int) Option {
	return func(g *Gate) {
		g.limit = min(max(limit, 1), constants.MaxRequestsPerSecond)
	}
}

// WithLogger logs throttling waits at debug level.
func WithLogger(logger fiken.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a gate for 4 requests per second.
func New(opts ...Option) *Gate {
	g := &Gate{
		sem:    make(chan struct{}, 1),
		limit:  constants.MaxRequestsPerSecond,
		period: constants.RateWindow,
		now:    time.Now,
		sleep:  Sleep,
		logger: fiken.NopLogger{},
	}

	for _, opt := range opts {
		opt(g)
	}

	g.window = make([]time.Time, 0, g.limit)

	return g
}

// Acquire waits until a request may start and records its start time. While
// one caller is inside Acquire every other caller waits for it. The only
// failure is cancellation of ctx.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // context errors are returned as is
	}
	defer func() { <-g.sem }()

	now := g.now()
	g.evict(now)

	for len(g.window) >= g.limit {
		wait := min(g.period-now.Sub(g.window[0]), g.period)
		if wait > 0 {
			g.logger.Debug("Rate limit reached, waiting", map[string]interface{}{
				"wait_ms":   wait.Milliseconds(),
				"in_window": len(g.window),
			})

			err := g.sleep(ctx, wait)
			if err != nil {
				return err
			}
		}

		now = g.now()
		g.evict(now)
	}

	g.window = append(g.window, now)

	return nil
}

// Limit returns the number of requests admitted per window.
func (g *Gate) Limit() int {
	return g.limit
}

// Window returns a copy of the recorded start times, oldest first.
func (g *Gate) Window() []time.Time {
	g.sem <- struct{}{}
	defer func() { <-g.sem }()

	return append([]time.Time(nil), g.window...)
}

// evict drops start times at least one period old.
func (g *Gate) evict(now time.Time) {
	drop := 0
	for drop < len(g.window) && now.Sub(g.window[drop]) >= g.period {
		drop++
	}

	if drop > 0 {
		g.window = append(g.window[:0], g.window[drop:]...)
	}
}

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // context errors are returned as is
	}
}
