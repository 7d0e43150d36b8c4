// Copyright 2025 The dockboard authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package discover

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
)

const (
	// DefaultInterval is the default pause between two discovery cycles.
	DefaultInterval = 2 * time.Second
	// DefaultCallTimeout is the default upper bound on any single engine
	// API call made during a cycle.
	DefaultCallTimeout = 5 * time.Second
	// DefaultSampleLimit is the default number of concurrent stats samples
	// taken during a single cycle.
	DefaultSampleLimit = 8
)

// Engine periodically discovers the services of a single container engine
// and publishes them, together with their resource stats, as immutable
// snapshots to a dockboard.Cache. Engines must be created using New.
type Engine struct {
	client      engine.Client
	cache       *dockboard.Cache
	interval    time.Duration
	callTimeout time.Duration
	sampleLimit int
	log         *slog.Logger
	now         func() time.Time

	prev      *dockboard.Snapshot // last successfully published snapshot.
	failures  atomic.Uint64
	ready     chan struct{}
	readyOnce sync.Once
}

// EngineOption configures a discovery engine when creating it with New.
type EngineOption func(*Engine)

// WithInterval sets the pause between two discovery cycles.
func WithInterval(interval time.Duration) EngineOption {
	return func(e *Engine) { e.interval = interval }
}

// WithCallTimeout bounds every single engine API call made during a cycle.
func WithCallTimeout(timeout time.Duration) EngineOption {
	return func(e *Engine) { e.callTimeout = timeout }
}

// WithSampleLimit caps the number of concurrent stats samples per cycle.
func WithSampleLimit(limit int) EngineOption {
	return func(e *Engine) { e.sampleLimit = limit }
}

// WithLogger sets the structured logger discovery logs to, defaulting to
// slog's default logger otherwise.
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// New returns a discovery engine polling the specified container engine
// client and publishing snapshots to the specified cache.
func New(client engine.Client, cache *dockboard.Cache, opts ...EngineOption) *Engine {
	e := &Engine{
		client:      client,
		cache:       cache,
		interval:    DefaultInterval,
		callTimeout: DefaultCallTimeout,
		sampleLimit: DefaultSampleLimit,
		log:         slog.Default(),
		now:         time.Now,
		prev:        dockboard.EmptySnapshot(),
		ready:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ready returns a channel that is closed after the first successful
// discovery cycle has published its snapshot.
func (e *Engine) Ready() <-chan struct{} {
	return e.ready
}

// Failures returns the number of discovery cycles that failed to list the
// container engine's services since this engine was created.
func (e *Engine) Failures() uint64 {
	return e.failures.Load()
}

// Run polls the container engine in cycles until ctx is done, starting with
// an immediate first cycle. Failed cycles are counted and logged, but never
// terminate the loop. Run only returns the ctx cancellation cause.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info("discovery starting",
		slog.String("api", e.client.API()),
		slog.Duration("interval", e.interval))
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		if diff, err := e.Cycle(ctx); err != nil {
			e.log.Warn("discovery cycle failed", slog.Any("error", err))
		} else if !diff.Empty() {
			e.log.Debug("services changed",
				slog.Int("added", len(diff.Added)),
				slog.Int("removed", len(diff.Removed)),
				slog.Int("changed", len(diff.Changed)))
		}
		select {
		case <-ctx.Done():
			e.log.Info("discovery stopping")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Cycle runs a single discovery cycle: list the engine's services, sample
// their stats, then publish a new snapshot. When listing fails, the cycle
// fails as a whole, leaving the previously published snapshot in place and
// returning a wrapped engine error. Stats failures never fail a cycle.
func (e *Engine) Cycle(ctx context.Context) (Diff, error) {
	lctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	services, err := e.client.List(lctx)
	cancel()
	if err != nil {
		e.failures.Add(1)
		return Diff{}, fmt.Errorf("cannot list services: %w", err)
	}
	current := make(map[string]dockboard.Service, len(services))
	for _, svc := range services {
		current[svc.ID] = svc
	}
	diff := computeDiff(e.prev, current)

	// Seed the new entries with the previous cycle's stats where a service
	// survived, so a failed sample below keeps the stale sample instead of
	// blanking the service's gauges.
	entries := make(map[string]dockboard.Entry, len(current))
	for id, svc := range current {
		entry := dockboard.Entry{Service: svc}
		if before, ok := e.prev.Entry(id); ok {
			entry.Stats = before.Stats
		}
		entries[id] = entry
	}
	e.sample(ctx, entries)

	snap := dockboard.NewSnapshot(e.now().UTC(), entries)
	e.cache.Publish(snap)
	e.prev = snap
	e.readyOnce.Do(func() { close(e.ready) })
	return diff, nil
}
