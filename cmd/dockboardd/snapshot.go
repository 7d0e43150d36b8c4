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

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/config"
	"github.com/lincooln/dockboard/discover"
	"github.com/lincooln/dockboard/engine/moby"
	"github.com/lincooln/dockboard/settings"
)

// snapshotCmd runs a single discovery cycle and prints the resulting
// dashboard view, merged with the stored settings.
func snapshotCmd(configPath *string) *cobra.Command {
	var asJSON bool
	var all bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Discover containers once and print the dashboard view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, err := settings.Open(cfg.SettingsPath)
			if err != nil {
				return fmt.Errorf("open settings store: %w", err)
			}
			defer store.Close()
			client, err := moby.New(cfg.DockerHost)
			if err != nil {
				return fmt.Errorf("create Docker client: %w", err)
			}
			defer client.Close()

			cache := dockboard.NewCache()
			eng := discover.New(client, cache,
				discover.WithCallTimeout(time.Duration(cfg.CallTimeout)),
				discover.WithSampleLimit(cfg.SampleConcurrency))
			if _, err := eng.Cycle(cmd.Context()); err != nil {
				return err
			}
			prefs, err := store.Get()
			if err != nil {
				return err
			}
			view := dockboard.NewView(cache.Read(), prefs)
			services := view.Services
			if !all {
				services = view.Visible()
			}
			if asJSON {
				view.Services = services
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			return printServices(cmd, services)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Include hidden containers")
	return cmd
}

func printServices(cmd *cobra.Command, services []dockboard.ServiceView) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tCPU\tMEMORY\tPORTS")
	for _, sv := range services {
		name := sv.DisplayName
		if sv.Favorite {
			name = "★ " + name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			name, sv.Service.Status, cpuCell(sv.Stats), memoryCell(sv.Stats),
			portsCell(sv.Service.Ports))
	}
	return tw.Flush()
}

func cpuCell(stats *dockboard.StatsSample) string {
	if stats == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", stats.CPUPercent)
}

func memoryCell(stats *dockboard.StatsSample) string {
	if stats == nil {
		return "-"
	}
	return fmt.Sprintf("%s / %s",
		units.BytesSize(float64(stats.MemoryUsedBytes)),
		units.BytesSize(float64(stats.MemoryLimitBytes)))
}

func portsCell(ports []dockboard.PortBinding) string {
	if len(ports) == 0 {
		return "-"
	}
	cells := make([]string, 0, len(ports))
	for _, port := range ports {
		cells = append(cells, port.String())
	}
	return strings.Join(cells, ", ")
}
