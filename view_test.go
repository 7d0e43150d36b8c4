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
	"time"

	"github.com/lincooln/dockboard/settings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func testSnapshot(entries ...Entry) *Snapshot {
	m := map[string]Entry{}
	for _, entry := range entries {
		m[entry.Service.ID] = entry
	}
	return NewSnapshot(time.Now(), m)
}

var _ = Describe("merged views", func() {

	It("decorates services with their preferences", func() {
		prefs := settings.Default()
		prefs.Favorites = []string{"1111"}
		prefs.Containers["2222"] = settings.ContainerSettings{
			Visible:    false,
			CustomName: "Postgres",
			CustomURL:  "http://localhost:5432",
			Icon:       "🐘",
		}
		view := NewView(testSnapshot(
			Entry{Service: Service{ID: "1111", Name: "web", Status: StatusRunning}},
			Entry{Service: Service{ID: "2222", Name: "db", Status: StatusRunning}},
		), prefs)

		Expect(view.Services).To(HaveLen(2))
		byID := map[string]ServiceView{}
		for _, sv := range view.Services {
			byID[sv.Service.ID] = sv
		}
		Expect(byID["1111"].Favorite).To(BeTrue())
		Expect(byID["1111"].Hidden).To(BeFalse())
		Expect(byID["1111"].DisplayName).To(Equal("web"))
		Expect(byID["1111"].Icon).To(Equal("🐳"))
		Expect(byID["2222"].Favorite).To(BeFalse())
		Expect(byID["2222"].Hidden).To(BeTrue())
		Expect(byID["2222"].DisplayName).To(Equal("Postgres"))
		Expect(byID["2222"].CustomURL).To(Equal("http://localhost:5432"))
		Expect(byID["2222"].Icon).To(Equal("🐘"))
	})

	It("silently skips preferences for services not in the snapshot", func() {
		prefs := settings.Default()
		prefs.Favorites = []string{"0000", "1111"}
		prefs.Containers["9999"] = settings.ContainerSettings{Visible: false}
		view := NewView(testSnapshot(
			Entry{Service: Service{ID: "1111", Name: "web"}},
		), prefs)
		Expect(view.Services).To(HaveLen(1))
		Expect(view.Services[0].Favorite).To(BeTrue())
	})

	It("filters hidden services out of the visible list", func() {
		prefs := settings.Default()
		prefs.Containers["2222"] = settings.ContainerSettings{Visible: false}
		view := NewView(testSnapshot(
			Entry{Service: Service{ID: "1111", Name: "web"}},
			Entry{Service: Service{ID: "2222", Name: "db"}},
		), prefs)
		visible := view.Visible()
		Expect(visible).To(HaveLen(1))
		Expect(visible[0].Service.ID).To(Equal("1111"))
	})

	It("passes the appearance through unmodified", func() {
		prefs := settings.Default()
		prefs.Appearance["theme"] = "light"
		view := NewView(testSnapshot(), prefs)
		Expect(view.Appearance).To(HaveKeyWithValue("theme", "light"))
		Expect(view.Appearance).To(HaveKeyWithValue("accent_color", "#4CAF50"))
	})

	Context("sorting", func() {

		entries := func() []Entry {
			return []Entry{
				{Service: Service{ID: "1", Name: "zeta", Status: StatusRunning,
					Ports: []PortBinding{{HostPort: 8080, ContainerPort: 80, Protocol: "tcp"}}}},
				{Service: Service{ID: "2", Name: "Alpha", Status: StatusExited,
					Ports: []PortBinding{{HostPort: 9000, ContainerPort: 80, Protocol: "tcp"}}}},
				{Service: Service{ID: "3", Name: "midway", Status: StatusRunning}},
			}
		}

		names := func(view View) []string {
			names := make([]string, 0, len(view.Services))
			for _, sv := range view.Services {
				names = append(names, sv.DisplayName)
			}
			return names
		}

		It("groups running services first by default", func() {
			prefs := settings.Default()
			view := NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"midway", "zeta", "Alpha"}))
		})

		It("sorts by name without grouping", func() {
			prefs := settings.Default()
			prefs.Sort = settings.SortSettings{Method: settings.SortNameAsc}
			view := NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"Alpha", "midway", "zeta"}))

			prefs.Sort.Method = settings.SortNameDesc
			view = NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"zeta", "midway", "Alpha"}))
		})

		It("sorts by highest published host port", func() {
			prefs := settings.Default()
			prefs.Sort = settings.SortSettings{Method: settings.SortPortsAsc}
			view := NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"midway", "zeta", "Alpha"}))

			prefs.Sort.Method = settings.SortPortsDesc
			view = NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"Alpha", "zeta", "midway"}))
		})

		It("sorts by the custom display name, not the container name", func() {
			prefs := settings.Default()
			prefs.Sort = settings.SortSettings{Method: settings.SortNameAsc}
			prefs.Containers["1"] = settings.ContainerSettings{Visible: true, CustomName: "aaa"}
			view := NewView(testSnapshot(entries()...), prefs)
			Expect(names(view)).To(Equal([]string{"aaa", "Alpha", "midway"}))
		})

	})

})
