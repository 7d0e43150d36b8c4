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

/*
Package dockboard defines the strict data model of a container dashboard's
discovery-and-stats core: the [Service] descriptions discovered from a
container runtime, the latest [StatsSample] resource readings attached to
them, and the immutable [Snapshot] aggregating both at one instant.

Raw runtime payloads never travel beyond the runtime adapter (see package
engine); everything above the adapter operates on the model in this package
only.

# Snapshot

A [Snapshot] is the atomic, externally visible state: a mapping from service
IDs to their descriptions and optional latest resource readings, all produced
by the same discovery pass. Snapshots are immutable once built; the discovery
pipeline produces a fresh Snapshot per polling cycle and publishes it
wholesale.

# Cache

The [Cache] holds the most recently published Snapshot behind a single-writer,
many-readers contract. Readers always receive some fully published Snapshot
and never block on the polling pipeline; before the first discovery cycle
completes they receive the empty Snapshot.

# View

[NewView] merges a Snapshot with the operator's persisted preferences
(package settings) at read time: favorite markers, custom naming, visibility
and the chosen display order. Preferences referencing services that are no
longer present are inert.
*/
package dockboard
