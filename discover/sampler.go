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
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
	"golang.org/x/sync/errgroup"
)

// sample takes one stats sample per entry, fanning out over a bounded number
// of concurrent engine API calls and updating the entries in place. A
// successful sample replaces the entry's stats, a not-found failure clears
// them (the service just vanished), and any other failure leaves the
// carried-over stats untouched.
func (e *Engine) sample(ctx context.Context, entries map[string]dockboard.Entry) {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.sampleLimit)
	// Fan out over a key snapshot: workers update the entries map while we
	// are still spawning, so we must not iterate the map itself here.
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, e.callTimeout)
			defer cancel()
			sample, err := e.client.SampleStats(sctx, id)
			mu.Lock()
			defer mu.Unlock()
			entry := entries[id]
			switch {
			case err == nil:
				entry.Stats = &sample
			case engine.IsNotFound(err):
				entry.Stats = nil
			default:
				e.log.Debug("stats sample failed",
					slog.String("id", id), slog.Any("error", err))
				return nil // keep the carried-over sample.
			}
			entries[id] = entry
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, they degrade instead.
}
