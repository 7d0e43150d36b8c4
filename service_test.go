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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("services", func() {

	It("parses runtime state strings", func() {
		Expect(ParseServiceStatus("running")).To(Equal(StatusRunning))
		Expect(ParseServiceStatus("exited")).To(Equal(StatusExited))
		Expect(ParseServiceStatus("paused")).To(Equal(StatusPaused))
		Expect(ParseServiceStatus("restarting")).To(Equal(StatusRestarting))
		Expect(ParseServiceStatus("dead")).To(Equal(StatusUnknown))
		Expect(ParseServiceStatus("")).To(Equal(StatusUnknown))
	})

	Context("display names", func() {

		It("prefers an explicit dashboard name label", func() {
			svc := Service{
				Name: "pg-1",
				Labels: map[string]string{
					DisplayNameLabel:     "Postgres",
					ComposerServiceLabel: "db",
				},
			}
			Expect(svc.DisplayName()).To(Equal("Postgres"))
		})

		It("uses the composer service name", func() {
			svc := Service{
				Name: "myproj-db-1",
				Labels: map[string]string{
					ComposerProjectLabel: "myproj",
					ComposerServiceLabel: "db",
				},
			}
			Expect(svc.DisplayName()).To(Equal("db"))
		})

		It("falls back from generic composer service names to the project", func() {
			for _, generic := range []string{"web", "app", "server"} {
				svc := Service{
					Name: "myproj-" + generic + "-1",
					Labels: map[string]string{
						ComposerProjectLabel: "myproj",
						ComposerServiceLabel: generic,
					},
				}
				Expect(svc.DisplayName()).To(Equal("myproj"), "service %q", generic)
			}
		})

		It("falls back to the container name", func() {
			Expect(Service{Name: "lonely"}.DisplayName()).To(Equal("lonely"))
			Expect(Service{
				Name:   "halfway",
				Labels: map[string]string{ComposerServiceLabel: "db"},
			}.DisplayName()).To(Equal("halfway"))
		})

	})

	It("renders port bindings", func() {
		Expect(PortBinding{
			HostIP: "0.0.0.0", HostPort: 8080, ContainerPort: 80, Protocol: "tcp",
		}.String()).To(Equal("0.0.0.0:8080->80/tcp"))
		Expect(PortBinding{
			ContainerPort: 53, Protocol: "udp",
		}.String()).To(Equal("53/udp"))
	})

	It("compares service descriptions field by field", func() {
		now := time.Now()
		svc := Service{
			ID:        "deadbeef",
			Name:      "canary",
			Image:     "busybox",
			Labels:    map[string]string{"foo": "bar"},
			Status:    StatusRunning,
			CreatedAt: now,
			Ports:     []PortBinding{{HostPort: 8080, ContainerPort: 80, Protocol: "tcp"}},
			Networks:  []string{"bridge"},
		}
		Expect(svc.Equal(svc)).To(BeTrue())

		changed := svc
		changed.Status = StatusExited
		Expect(svc.Equal(changed)).To(BeFalse())

		changed = svc
		changed.Labels = map[string]string{"foo": "baz"}
		Expect(svc.Equal(changed)).To(BeFalse())

		changed = svc
		changed.Ports = nil
		Expect(svc.Equal(changed)).To(BeFalse())
	})

})
