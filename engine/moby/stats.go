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
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
)

// SampleStats takes a single point-in-time resource reading for the
// container with the given ID, using one non-streamed stats frame of the
// daemon.
func (c *Client) SampleStats(ctx context.Context, id string) (dockboard.StatsSample, error) {
	resp, err := c.moby.ContainerStats(ctx, id, false)
	if err != nil {
		return dockboard.StatsSample{}, classify("stats", id, err)
	}
	defer resp.Body.Close()
	var frame container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&frame); err != nil {
		return dockboard.StatsSample{}, engine.NewError(engine.Malformed, "stats", id, err)
	}
	return toSample(frame, id)
}

// toSample converts one daemon stats frame into a resource reading. Frames
// without any CPU and memory accounting (as the daemon produces for
// containers without processes) are malformed from the dashboard's point of
// view: there is nothing to show.
func toSample(frame container.StatsResponse, id string) (dockboard.StatsSample, error) {
	if frame.MemoryStats.Limit == 0 && frame.CPUStats.SystemUsage == 0 &&
		frame.CPUStats.CPUUsage.TotalUsage == 0 {
		return dockboard.StatsSample{}, engine.NewError(engine.Malformed, "stats", id,
			fmt.Errorf("stats frame without CPU and memory accounting"))
	}
	sample := dockboard.StatsSample{
		CPUPercent:       cpuPercent(frame),
		MemoryUsedBytes:  frame.MemoryStats.Usage,
		MemoryLimitBytes: frame.MemoryStats.Limit,
		PIDs:             frame.PidsStats.Current,
		SampledAt:        frame.Read.UTC(),
	}
	if frame.Read.IsZero() {
		sample.SampledAt = time.Now().UTC()
	}
	for _, netstats := range frame.Networks {
		sample.NetworkRxBytes += netstats.RxBytes
		sample.NetworkTxBytes += netstats.TxBytes
	}
	for _, entry := range frame.BlkioStats.IoServiceBytesRecursive {
		switch {
		case strings.EqualFold(entry.Op, "read"):
			sample.BlockReadBytes += entry.Value
		case strings.EqualFold(entry.Op, "write"):
			sample.BlockWriteBytes += entry.Value
		}
	}
	return sample, nil
}

// cpuPercent calculates CPU usage in percent of the whole host from the
// frame's current and preceding CPU accounting, the same way the docker CLI
// does: the container's CPU time delta over the system CPU time delta,
// scaled by the number of online CPUs.
func cpuPercent(frame container.StatsResponse) float64 {
	cpuDelta := float64(frame.CPUStats.CPUUsage.TotalUsage) -
		float64(frame.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(frame.CPUStats.SystemUsage) -
		float64(frame.PreCPUStats.SystemUsage)
	if cpuDelta <= 0 || systemDelta <= 0 {
		return 0
	}
	online := float64(frame.CPUStats.OnlineCPUs)
	if online == 0 {
		online = float64(len(frame.CPUStats.CPUUsage.PercpuUsage))
	}
	if online == 0 {
		online = 1
	}
	return cpuDelta / systemDelta * online * 100.0
}
