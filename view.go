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

	"github.com/lincooln/dockboard/settings"
)

// ServiceView is one service entry of a merged [View]: the discovered
// service and its latest stats, decorated with the operator's presentation
// preferences.
type ServiceView struct {
	Service     Service      `json:"service"`
	Stats       *StatsSample `json:"stats,omitempty"`
	DisplayName string       `json:"display_name"`
	Favorite    bool         `json:"favorite"`
	Hidden      bool         `json:"hidden"`
	CustomURL   string       `json:"custom_url,omitempty"`
	Icon        string       `json:"icon"`
}

// View is a [Snapshot] merged with the persisted [settings.Settings] at read
// time: favorite markers set on matching service entries, presentation
// overrides applied, appearance passed through unmodified, and services
// ordered per the chosen sort settings. Merging never fails: preferences
// referencing services absent from the snapshot are simply not represented.
type View struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Services    []ServiceView     `json:"services"`
	Appearance  map[string]string `json:"appearance"`
}

// Age returns the staleness of the snapshot this view was merged from,
// relative to now; dashboards use it as the degraded-freshness indicator
// when the runtime has become unreachable.
func (v View) Age(now time.Time) time.Duration {
	return now.Sub(v.GeneratedAt)
}

// NewView merges a snapshot with the given settings. The snapshot stays
// untouched; the view holds its own service list.
func NewView(snap *Snapshot, prefs settings.Settings) View {
	services := make([]ServiceView, 0, snap.Len())
	for _, entry := range snap.Entries() {
		cs := prefs.Container(entry.Service.ID)
		name := cs.CustomName
		if name == "" {
			name = entry.Service.DisplayName()
		}
		services = append(services, ServiceView{
			Service:     entry.Service,
			Stats:       entry.Stats,
			DisplayName: name,
			Favorite:    prefs.IsFavorite(entry.Service.ID),
			Hidden:      !cs.Visible,
			CustomURL:   cs.CustomURL,
			Icon:        cs.Icon,
		})
	}
	sortServices(services, prefs.Sort)
	return View{
		GeneratedAt: snap.GeneratedAt(),
		Services:    services,
		Appearance:  prefs.Appearance,
	}
}

// Visible returns only the services not hidden by the operator, preserving
// the view's order.
func (v View) Visible() []ServiceView {
	visible := make([]ServiceView, 0, len(v.Services))
	for _, sv := range v.Services {
		if !sv.Hidden {
			visible = append(visible, sv)
		}
	}
	return visible
}

// maxPort is the sort key for the port-based sort methods: the highest
// published host port of a service, 0 when none are published.
func maxPort(sv ServiceView) int {
	max := 0
	for _, p := range sv.Service.Ports {
		if int(p.HostPort) > max {
			max = int(p.HostPort)
		}
	}
	return max
}

// sortServices orders the service views in place according to the chosen
// sort method, optionally grouping running services before all others.
func sortServices(services []ServiceView, sort settings.SortSettings) {
	slices.SortStableFunc(services, func(a, b ServiceView) int {
		if sort.GroupByStatus {
			arun, brun := a.Service.Status == StatusRunning, b.Service.Status == StatusRunning
			if arun != brun {
				if arun {
					return -1
				}
				return 1
			}
		}
		var c int
		switch sort.Method {
		case settings.SortNameDesc:
			c = -compareNames(a, b)
		case settings.SortPortsAsc:
			c = maxPort(a) - maxPort(b)
		case settings.SortPortsDesc:
			c = maxPort(b) - maxPort(a)
		default: // name_asc
			c = compareNames(a, b)
		}
		if c != 0 {
			return c
		}
		// Tie breaker keeps the order deterministic across publishes.
		return strings.Compare(a.Service.ID, b.Service.ID)
	})
}

func compareNames(a, b ServiceView) int {
	return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
}
