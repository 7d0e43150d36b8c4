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
	"slices"
	"strings"
	"time"
)

// Entry pairs one discovered service with its most recent resource reading,
// if any. Stats is nil until the first successful sample for this service.
type Entry struct {
	Service Service
	Stats   *StatsSample
}

// Snapshot is the atomic, externally visible state of the discovery core:
// all services known from one discovery pass, each with the latest resource
// reading available at publish time. A Snapshot is immutable once built;
// every Service entry reflects the same discovery pass and stats lag behind
// by at most one polling interval.
type Snapshot struct {
	generatedAt time.Time
	entries     map[string]Entry
}

// NewSnapshot returns a Snapshot generated at the given time from the given
// entries, keyed by service ID. The entries map is copied, so callers may
// keep mutating their map afterwards without tearing the Snapshot.
func NewSnapshot(generatedAt time.Time, entries map[string]Entry) *Snapshot {
	snap := &Snapshot{
		generatedAt: generatedAt,
		entries:     make(map[string]Entry, len(entries)),
	}
	for id, entry := range entries {
		snap.entries[id] = entry
	}
	return snap
}

// EmptySnapshot returns the snapshot readers see before the first discovery
// cycle has completed: no services and a zero generation timestamp.
func EmptySnapshot() *Snapshot {
	return &Snapshot{entries: map[string]Entry{}}
}

// GeneratedAt returns the timestamp of the discovery pass that produced this
// snapshot; zero for the empty snapshot.
func (s *Snapshot) GeneratedAt() time.Time { return s.generatedAt }

// Age returns the staleness of this snapshot relative to now.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.generatedAt)
}

// Len returns the number of services in this snapshot.
func (s *Snapshot) Len() int { return len(s.entries) }

// Entry returns the entry for the service with the given ID and whether such
// a service is part of this snapshot.
func (s *Snapshot) Entry(id string) (Entry, bool) {
	entry, ok := s.entries[id]
	return entry, ok
}

// IDs returns the IDs of all services in this snapshot, sorted.
func (s *Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entries returns all entries of this snapshot, ordered by service name
// (with the ID as tie breaker, as the runtime enforces unique names anyway).
func (s *Snapshot) Entries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(strings.ToLower(a.Service.Name), strings.ToLower(b.Service.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Service.ID, b.Service.ID)
	})
	return entries
}
