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

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/client"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
)

// Type specifies this container runtime's type identifier.
const Type = "docker.com"

// APIClient is the minimal Docker client surface this adapter needs. For
// production, Docker's client.Client is a compatible implementation, for
// unit testing our very own mobymock.MockingMoby.
type APIClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStats(ctx context.Context, containerID string, stream bool) (container.StatsResponseReader, error)
	Ping(ctx context.Context) (types.Ping, error)
	Info(ctx context.Context) (system.Info, error)
	DaemonHost() string
	Close() error
}

// Client is the Docker-engine implementation of the generic runtime client
// contract. It issues outbound queries only and keeps no local state; all
// retry policy belongs to its callers.
type Client struct {
	moby APIClient
}

// Make sure the runtime client contract is fully implemented.
var _ engine.Client = (*Client)(nil)

// New returns a Docker runtime client talking to the daemon at the given
// API endpoint. When dockersock is left empty then Docker's usual client
// defaults apply, such as picking up the docker host from the environment
// or falling back to the local host's "unix:///var/run/docker.sock".
func New(dockersock string) (*Client, error) {
	clientopts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}
	if dockersock != "" {
		clientopts = append(clientopts, client.WithHost(dockersock))
	}
	moby, err := client.NewClientWithOpts(clientopts...)
	if err != nil {
		return nil, err
	}
	return NewWithClient(moby), nil
}

// NewWithClient returns a Docker runtime client using the specified Docker
// API client; typically, you would want to use this lower-level constructor
// only in unit tests.
func NewWithClient(moby APIClient) *Client {
	return &Client{moby: moby}
}

// List returns all containers currently known to the daemon, including
// stopped ones, converted into the strict service model.
func (c *Client) List(ctx context.Context) ([]dockboard.Service, error) {
	containers, err := c.moby.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, classify("list", "", err)
	}
	services := make([]dockboard.Service, 0, len(containers))
	for _, cntr := range containers {
		service, err := toService(cntr)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

// ID returns the (more or less) unique engine identifier; the exact format
// is engine-specific.
func (c *Client) ID(ctx context.Context) string {
	info, err := c.moby.Info(ctx)
	if err == nil {
		return info.ID
	}
	return ""
}

// API returns the container engine API path.
func (c *Client) API() string { return c.moby.DaemonHost() }

// Ping checks whether the daemon currently answers API requests at all.
// Callers wanting to wait for an engine to come up wrap Ping in their own
// retry policy.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.moby.Ping(ctx); err != nil {
		return classify("ping", "", err)
	}
	return nil
}

// Close releases the underlying Docker client resources.
func (c *Client) Close() error {
	return c.moby.Close()
}

// classify converts a Docker client error into the classified runtime
// failure taxonomy: daemon-reported not-found errors keep their meaning,
// everything else at this level means we could not (completely) talk to the
// daemon. Malformed is reserved for responses that arrived but could not be
// understood, and is raised where decoding happens.
func classify(op, id string, err error) error {
	if errdefs.IsNotFound(err) {
		return engine.NewError(engine.NotFound, op, id, err)
	}
	return engine.NewError(engine.Unreachable, op, id, err)
}
