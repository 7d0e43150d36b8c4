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

package mobymock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/system"
)

// MockedStats is the raw accounting a mocked container reports in its stats
// frames. The zero value produces a frame without any CPU and memory
// accounting, which the Docker adapter rejects as malformed.
type MockedStats struct {
	CPUTotal       uint64
	PreCPUTotal    uint64
	SystemUsage    uint64
	PreSystemUsage uint64
	OnlineCPUs     uint32
	MemoryUsage    uint64
	MemoryLimit    uint64
	RxBytes        uint64
	TxBytes        uint64
	BlockRead      uint64
	BlockWrite     uint64
	PIDs           uint64
}

// MockedContainer is a container “run” by a MockingMoby mock.
type MockedContainer struct {
	ID       string
	Name     string
	Image    string
	Status   string // one of Docker's container states, such as "running"
	Created  time.Time
	Labels   map[string]string
	Ports    []container.Port
	Networks []string
	Stats    MockedStats
}

// MockingMoby is a minimal mock implementation of the Docker service API,
// or more precise, of the few parts the dockboard Docker adapter uses.
// The zero value is not usable, use NewMockingMoby instead.
type MockingMoby struct {
	mu         sync.Mutex
	containers map[string]MockedContainer
	listErr    error
	pingErr    error
	infoErr    error
	statsErrs  map[string]error
}

// NewMockingMoby returns a new Docker mock without any containers.
func NewMockingMoby() *MockingMoby {
	return &MockingMoby{
		containers: map[string]MockedContainer{},
		statsErrs:  map[string]error{},
	}
}

// AddContainer adds or replaces a mocked container, keyed by its ID.
func (mm *MockingMoby) AddContainer(mc MockedContainer) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.containers[mc.ID] = mc
}

// RemoveContainer removes the mocked container with the given ID, if any.
func (mm *MockingMoby) RemoveContainer(id string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	delete(mm.containers, id)
}

// FailListWith injects err into all subsequent container list calls; a nil
// err restores normal operations.
func (mm *MockingMoby) FailListWith(err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.listErr = err
}

// FailStatsWith injects err into subsequent stats calls for the container
// with the given ID; a nil err restores normal operations.
func (mm *MockingMoby) FailStatsWith(id string, err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if err == nil {
		delete(mm.statsErrs, id)
		return
	}
	mm.statsErrs[id] = err
}

// FailPingWith injects err into subsequent ping and info calls; a nil err
// restores normal operations.
func (mm *MockingMoby) FailPingWith(err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.pingErr = err
	mm.infoErr = err
}

// ContainerList returns summaries for all mocked containers. The options are
// accepted but ignored, as the mock always lists all containers.
func (mm *MockingMoby) ContainerList(ctx context.Context, _ container.ListOptions) ([]container.Summary, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if err := mm.listErr; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summaries := make([]container.Summary, 0, len(mm.containers))
	for _, mc := range mm.containers {
		summaries = append(summaries, container.Summary{
			ID:      mc.ID,
			Names:   []string{"/" + mc.Name},
			Image:   mc.Image,
			Labels:  mc.Labels,
			State:   mc.Status,
			Created: mc.Created.Unix(),
			Ports:   mc.Ports,
			NetworkSettings: &container.NetworkSettingsSummary{
				Networks: networkEndpoints(mc.Networks),
			},
		})
	}
	return summaries, nil
}

// ContainerStats returns a single stats frame for the mocked container with
// the given ID, built from its MockedStats accounting. Streaming stats are
// not supported by this mock.
func (mm *MockingMoby) ContainerStats(ctx context.Context, id string, stream bool) (container.StatsResponseReader, error) {
	if stream {
		return container.StatsResponseReader{}, fmt.Errorf("mobymock: streamed stats not supported")
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if err := mm.statsErrs[id]; err != nil {
		return container.StatsResponseReader{}, err
	}
	if err := ctx.Err(); err != nil {
		return container.StatsResponseReader{}, err
	}
	mc, ok := mm.containers[id]
	if !ok {
		return container.StatsResponseReader{},
			fmt.Errorf("no such container %q: %w", id, errdefs.ErrNotFound)
	}
	frame := statsFrame(mc)
	jsondata, err := json.Marshal(frame)
	if err != nil {
		return container.StatsResponseReader{}, err
	}
	return container.StatsResponseReader{
		Body:   io.NopCloser(bytes.NewReader(jsondata)),
		OSType: "linux",
	}, nil
}

// Ping answers with a minimal, but healthy ping response.
func (mm *MockingMoby) Ping(ctx context.Context) (types.Ping, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if err := mm.pingErr; err != nil {
		return types.Ping{}, err
	}
	return types.Ping{APIVersion: "1.47", OSType: "linux"}, nil
}

// Info returns mocked daemon information with a stable engine identifier.
func (mm *MockingMoby) Info(ctx context.Context) (system.Info, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if err := mm.infoErr; err != nil {
		return system.Info{}, err
	}
	return system.Info{
		ID:   "MOCK:INGM:OBYD:AEMO:NIDE:NTIF:IER0:0000:0000:0000:0000:0000",
		Name: "mockingmoby",
	}, nil
}

// DaemonHost returns the (fake) daemon host URL this mock pretends to be
// connected to.
func (mm *MockingMoby) DaemonHost() string {
	return "unix:///var/run/mockingmoby.sock"
}

// Close the mock's connection, which is a no-op.
func (mm *MockingMoby) Close() error {
	return nil
}

func networkEndpoints(names []string) map[string]*network.EndpointSettings {
	if len(names) == 0 {
		return nil
	}
	endpoints := make(map[string]*network.EndpointSettings, len(names))
	for _, name := range names {
		endpoints[name] = &network.EndpointSettings{}
	}
	return endpoints
}

// statsFrame assembles a one-shot stats response from a mocked container's
// accounting, in the same shape the Docker daemon reports.
func statsFrame(mc MockedContainer) container.StatsResponse {
	frame := container.StatsResponse{
		Read: time.Now(),
		ID:   mc.ID,
		Name: "/" + mc.Name,
	}
	frame.CPUStats.CPUUsage.TotalUsage = mc.Stats.CPUTotal
	frame.CPUStats.SystemUsage = mc.Stats.SystemUsage
	frame.CPUStats.OnlineCPUs = mc.Stats.OnlineCPUs
	frame.PreCPUStats.CPUUsage.TotalUsage = mc.Stats.PreCPUTotal
	frame.PreCPUStats.SystemUsage = mc.Stats.PreSystemUsage
	frame.MemoryStats.Usage = mc.Stats.MemoryUsage
	frame.MemoryStats.Limit = mc.Stats.MemoryLimit
	frame.PidsStats.Current = mc.Stats.PIDs
	if mc.Stats.RxBytes != 0 || mc.Stats.TxBytes != 0 {
		frame.Networks = map[string]container.NetworkStats{
			"eth0": {RxBytes: mc.Stats.RxBytes, TxBytes: mc.Stats.TxBytes},
		}
	}
	if mc.Stats.BlockRead != 0 || mc.Stats.BlockWrite != 0 {
		frame.BlkioStats.IoServiceBytesRecursive = []container.BlkioStatEntry{
			{Op: "read", Value: mc.Stats.BlockRead},
			{Op: "write", Value: mc.Stats.BlockWrite},
		}
	}
	return frame
}
