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

package moby

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
)

// toService converts a Docker container summary into the strict service
// model. Summaries without an ID are a malformed daemon response.
func toService(cntr container.Summary) (dockboard.Service, error) {
	if cntr.ID == "" {
		return dockboard.Service{}, engine.NewError(engine.Malformed, "list", "",
			fmt.Errorf("container summary without ID"))
	}
	name := ""
	if len(cntr.Names) > 0 {
		name = strings.TrimPrefix(cntr.Names[0], "/")
	}
	return dockboard.Service{
		ID:        cntr.ID,
		Name:      name,
		Image:     cntr.Image,
		Labels:    cntr.Labels,
		Status:    dockboard.ParseServiceStatus(cntr.State),
		CreatedAt: time.Unix(cntr.Created, 0).UTC(),
		Ports:     toPortBindings(cntr.Ports),
		Networks:  toNetworks(cntr),
	}, nil
}

// toPortBindings converts the summary's port list into deterministically
// ordered port bindings: ascending by container port and protocol, host
// bindings of the same container port ascending by host port.
func toPortBindings(ports []container.Port) []dockboard.PortBinding {
	if len(ports) == 0 {
		return nil
	}
	byPort := map[nat.Port][]container.Port{}
	natports := make([]nat.Port, 0, len(ports))
	for _, p := range ports {
		natport, err := nat.NewPort(p.Type, strconv.Itoa(int(p.PrivatePort)))
		if err != nil {
			continue // unparseable entries are dropped, not fatal.
		}
		if _, ok := byPort[natport]; !ok {
			natports = append(natports, natport)
		}
		byPort[natport] = append(byPort[natport], p)
	}
	nat.Sort(natports, func(i, j nat.Port) bool {
		if i.Int() != j.Int() {
			return i.Int() < j.Int()
		}
		return i.Proto() < j.Proto()
	})
	bindings := make([]dockboard.PortBinding, 0, len(ports))
	for _, natport := range natports {
		group := byPort[natport]
		slices.SortFunc(group, func(a, b container.Port) int {
			if a.PublicPort != b.PublicPort {
				return int(a.PublicPort) - int(b.PublicPort)
			}
			return strings.Compare(a.IP, b.IP)
		})
		for _, p := range group {
			bindings = append(bindings, dockboard.PortBinding{
				HostIP:        p.IP,
				HostPort:      p.PublicPort,
				ContainerPort: p.PrivatePort,
				Protocol:      p.Type,
			})
		}
	}
	return bindings
}

// toNetworks returns the names of the networks a container is attached to,
// sorted.
func toNetworks(cntr container.Summary) []string {
	if cntr.NetworkSettings == nil || len(cntr.NetworkSettings.Networks) == 0 {
		return nil
	}
	networks := make([]string, 0, len(cntr.NetworkSettings.Networks))
	for name := range cntr.NetworkSettings.Networks {
		networks = append(networks, name)
	}
	slices.Sort(networks)
	return networks
}
