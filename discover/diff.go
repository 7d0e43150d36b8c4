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
	"slices"

	"github.com/lincooln/dockboard"
)

// Diff describes how one discovery cycle's set of services differs from the
// previous cycle's set, in terms of service IDs. Each ID list is sorted.
type Diff struct {
	Added   []string // services present now that were absent before.
	Removed []string // services present before that are gone now.
	Changed []string // services present in both whose description changed.
}

// Empty returns true if nothing was added, removed, or changed.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// computeDiff compares the freshly listed services against the previously
// published snapshot. Stats are deliberately left out of the comparison, as
// they change on almost every cycle.
func computeDiff(prev *dockboard.Snapshot, services map[string]dockboard.Service) Diff {
	var diff Diff
	for id, svc := range services {
		before, ok := prev.Entry(id)
		switch {
		case !ok:
			diff.Added = append(diff.Added, id)
		case !before.Service.Equal(svc):
			diff.Changed = append(diff.Changed, id)
		}
	}
	for _, id := range prev.IDs() {
		if _, ok := services[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}
	slices.Sort(diff.Added)
	slices.Sort(diff.Removed)
	slices.Sort(diff.Changed)
	return diff
}
