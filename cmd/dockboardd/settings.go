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

	"github.com/spf13/cobra"

	"github.com/lincooln/dockboard/config"
	"github.com/lincooln/dockboard/settings"
)

// settingsCmd manages the durable dashboard settings.
func settingsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage dashboard settings",
	}
	cmd.AddCommand(settingsShowCmd(configPath))
	cmd.AddCommand(settingsFavoriteCmd(configPath))
	cmd.AddCommand(settingsSetCmd(configPath))
	cmd.AddCommand(settingsSortCmd(configPath))
	cmd.AddCommand(settingsHideCmd(configPath))
	cmd.AddCommand(settingsForgetCmd(configPath))
	return cmd
}

func openStore(configPath string) (*settings.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return store, nil
}

func settingsShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print all settings as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			prefs, err := store.Get()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"favorites":     prefs.Favorites,
				"appearance":    prefs.Appearance,
				"sort_settings": prefs.Sort,
				"containers":    prefs.Containers,
			})
		},
	}
}

func settingsFavoriteCmd(configPath *string) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "favorite CONTAINER-ID [CONTAINER-ID...]",
		Short: "Mark containers as favorites, or unmark them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if remove {
				_, err = store.UpdateFavorites(nil, args)
			} else {
				_, err = store.UpdateFavorites(args, nil)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Unmark instead of mark")
	return cmd
}

func settingsSetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set OPTION VALUE",
		Short: "Set an appearance option, such as theme or accent_color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			_, err = store.UpdateAppearance(args[0], args[1])
			return err
		},
	}
}

func settingsSortCmd(configPath *string) *cobra.Command {
	var noGroup bool

	cmd := &cobra.Command{
		Use:   "sort METHOD",
		Short: "Set the sort method (name_asc, name_desc, ports_asc, ports_desc)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			_, err = store.UpdateSort(settings.SortSettings{
				Method:        args[0],
				GroupByStatus: !noGroup,
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&noGroup, "no-group", false, "Do not group running containers first")
	return cmd
}

func settingsHideCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hide CONTAINER-ID",
		Short: "Hide a container from the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			_, err = store.HideService(args[0])
			return err
		},
	}
}

func settingsForgetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "forget CONTAINER-ID",
		Short: "Drop all per-container settings for a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			_, err = store.DeleteContainer(args[0])
			return err
		},
	}
}
