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

// dockboardd is the dockboard daemon: it polls the local Docker daemon for
// containers and their resource stats, keeping an always-readable snapshot,
// and manages the durable dashboard settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/config"
	"github.com/lincooln/dockboard/discover"
	"github.com/lincooln/dockboard/engine/moby"
	"github.com/lincooln/dockboard/internal/logging"
	"github.com/lincooln/dockboard/settings"
)

func main() {
	if err := logging.Configure("info"); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := rootCmd().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "dockboardd",
		Short: "Docker dashboard daemon",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if debug {
				level = "debug"
			}
			return logging.Configure(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configPath)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Config file path")
	cmd.AddCommand(snapshotCmd(&configPath))
	cmd.AddCommand(settingsCmd(&configPath))
	return cmd
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "dockboard.yaml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dockboard", "config.yaml")
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Configure(cfg.LogLevel); err != nil {
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
	if err := awaitDaemon(ctx, client); err != nil {
		return err
	}
	slog.Info("connected to Docker daemon",
		"api", client.API(), "engine-id", client.ID(ctx))

	cache := dockboard.NewCache()
	eng := discover.New(client, cache,
		discover.WithInterval(time.Duration(cfg.PollInterval)),
		discover.WithCallTimeout(time.Duration(cfg.CallTimeout)),
		discover.WithSampleLimit(cfg.SampleConcurrency))
	err = eng.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// awaitDaemon pings the Docker daemon under exponential backoff until it
// answers, the backoff gives up, or ctx is done. Discovery itself never
// retries, so daemon restarts during startup are absorbed here.
func awaitDaemon(ctx context.Context, client *moby.Client) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	err := backoff.Retry(func() error {
		return client.Ping(ctx)
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return fmt.Errorf("Docker daemon not reachable: %w", err)
	}
	return nil
}
