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

package dockboard

import (
	"sync"
)

// Cache holds the most recently published [Snapshot] behind a read-mostly,
// concurrency-safe store. The discovery pipeline is the single writer,
// replacing the cached value wholesale on each publish; any number of
// readers get the current snapshot without ever waiting on in-flight
// polling, as no lock is held across I/O.
type Cache struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache returns a Cache primed with the empty snapshot, so that reads
// before the first discovery cycle completes yield an empty-but-valid view
// instead of nil.
func NewCache() *Cache {
	return &Cache{snap: EmptySnapshot()}
}

// Publish atomically replaces the cached snapshot. Only the discovery
// pipeline may call Publish; snapshots must be fully built before being
// handed over, as readers will see them immediately.
func (c *Cache) Publish(snap *Snapshot) {
	if snap == nil {
		return
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// Read returns the most recently published snapshot. It never blocks on the
// polling pipeline and never returns nil; two consecutive reads may return
// different snapshots when a publish happened in between, but each returned
// snapshot is always one that was fully published.
func (c *Cache) Read() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
