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
	"time"
)

// StatsSample is a single point-in-time resource reading for one service.
// All byte counters are cumulative since container start. Absence of a
// sample (not yet sampled, or the last sampling attempt failed) is
// represented by a nil *StatsSample in a snapshot [Entry], distinct from a
// sample of all zeroes.
type StatsSample struct {
	CPUPercent       float64   // CPU usage in percent of the whole host.
	MemoryUsedBytes  uint64    // current memory usage.
	MemoryLimitBytes uint64    // memory limit, or total host memory if unlimited.
	NetworkRxBytes   uint64    // bytes received, summed over all interfaces.
	NetworkTxBytes   uint64    // bytes transmitted, summed over all interfaces.
	BlockReadBytes   uint64    // bytes read from block devices.
	BlockWriteBytes  uint64    // bytes written to block devices.
	PIDs             uint64    // number of processes inside the container.
	SampledAt        time.Time // when this reading was taken.
}

// MemoryPercent returns memory usage relative to the limit, or 0 when no
// limit is known.
func (s StatsSample) MemoryPercent() float64 {
	if s.MemoryLimitBytes == 0 {
		return 0
	}
	return float64(s.MemoryUsedBytes) / float64(s.MemoryLimitBytes) * 100.0
}

// Age returns how old this reading is relative to now.
func (s StatsSample) Age(now time.Time) time.Duration {
	return now.Sub(s.SampledAt)
}

// String renders a compact textual representation of the reading.
func (s StatsSample) String() string {
	return fmt.Sprintf("cpu %.1f%%, mem %d/%d, net rx/tx %d/%d, blk r/w %d/%d",
		s.CPUPercent, s.MemoryUsedBytes, s.MemoryLimitBytes,
		s.NetworkRxBytes, s.NetworkTxBytes,
		s.BlockReadBytes, s.BlockWriteBytes)
}
