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
	"fmt"
	"maps"
	"slices"
	"time"
)

// ServiceStatus enumerates the container states the dashboard distinguishes.
// Runtime state strings outside this set map to [StatusUnknown].
type ServiceStatus string

// The service states known to the dashboard.
const (
	StatusRunning    ServiceStatus = "running"
	StatusExited     ServiceStatus = "exited"
	StatusPaused     ServiceStatus = "paused"
	StatusRestarting ServiceStatus = "restarting"
	StatusUnknown    ServiceStatus = "unknown"
)

// ParseServiceStatus maps a runtime-reported state string onto the fixed
// [ServiceStatus] set, returning [StatusUnknown] for anything it does not
// recognize.
func ParseServiceStatus(state string) ServiceStatus {
	switch state {
	case "running":
		return StatusRunning
	case "exited":
		return StatusExited
	case "paused":
		return StatusPaused
	case "restarting":
		return StatusRestarting
	}
	return StatusUnknown
}

// Label names understood by the dashboard when deriving a service's display
// name, in order of precedence.
const (
	// DisplayNameLabel optionally assigns an explicit dashboard display name
	// to a container.
	DisplayNameLabel = "dashboard.name"
	// ComposerProjectLabel is the composer project a container belongs to,
	// if any.
	ComposerProjectLabel = "com.docker.compose.project"
	// ComposerServiceLabel is the composer service name of a container, if
	// any.
	ComposerServiceLabel = "com.docker.compose.service"
)

// PortBinding describes a single published port of a service: a container
// port reachable on a host address and port.
type PortBinding struct {
	HostIP        string // host address the port is bound to, or zero.
	HostPort      uint16 // published port on the host, or zero if unpublished.
	ContainerPort uint16 // port inside the container.
	Protocol      string // "tcp", "udp", or "sctp".
}

// String renders the port binding in the familiar "host:port->port/proto"
// notation.
func (p PortBinding) String() string {
	if p.HostPort == 0 {
		return fmt.Sprintf("%d/%s", p.ContainerPort, p.Protocol)
	}
	return fmt.Sprintf("%s:%d->%d/%s", p.HostIP, p.HostPort, p.ContainerPort, p.Protocol)
}

// Service is a deliberately limited view on a single discovered container,
// dealing with only those few bits of data a dashboard needs: identity,
// descriptive metadata, state, and exposed bindings. Service values are
// converted from raw runtime payloads at the adapter boundary and are
// treated as immutable afterwards.
type Service struct {
	ID        string            // opaque stable identifier assigned by the runtime.
	Name      string            // container name without any prefixing "/".
	Image     string            // image reference the container was created from.
	Labels    map[string]string // labels assigned to this container.
	Status    ServiceStatus     // current container state.
	CreatedAt time.Time         // container creation timestamp, immutable.
	Ports     []PortBinding     // published ports, in deterministic order.
	Networks  []string          // attached network names, sorted.
}

// DisplayName returns the name a dashboard should show for this service: an
// explicit dashboard.name label wins, then the composer service name (with
// generic names such as "web" or "app" falling back to the composer project
// name), and finally the plain container name.
func (s Service) DisplayName() string {
	if name := s.Labels[DisplayNameLabel]; name != "" {
		return name
	}
	project := s.Labels[ComposerProjectLabel]
	service := s.Labels[ComposerServiceLabel]
	if project != "" && service != "" {
		switch service {
		case "web", "app", "server":
			return project
		}
		return service
	}
	return s.Name
}

// Equal reports whether two service descriptions are identical in all
// fields. Used by the discovery engine to decide whether a retained service
// counts as changed.
func (s Service) Equal(o Service) bool {
	return s.ID == o.ID &&
		s.Name == o.Name &&
		s.Image == o.Image &&
		s.Status == o.Status &&
		s.CreatedAt.Equal(o.CreatedAt) &&
		maps.Equal(s.Labels, o.Labels) &&
		slices.Equal(s.Ports, o.Ports) &&
		slices.Equal(s.Networks, o.Networks)
}

// String renders a short textual representation of the information kept
// about a specific service.
func (s Service) String() string {
	return fmt.Sprintf("service '%s'/%s (%s) %s", s.Name, s.ID, s.Image, s.Status)
}
