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

package mockruntime

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/lincooln/dockboard"
	"github.com/lincooln/dockboard/engine"
)

// Client is an in-memory container engine client for testing discovery
// without a real daemon. The zero value is not usable, use New instead.
type Client struct {
	mu        sync.Mutex
	services  map[string]dockboard.Service
	stats     map[string]dockboard.StatsSample
	listErr   error
	statsErrs map[string]error
}

var _ engine.Client = (*Client)(nil)

// New returns a new mock engine client without any services.
func New() *Client {
	return &Client{
		services:  map[string]dockboard.Service{},
		stats:     map[string]dockboard.StatsSample{},
		statsErrs: map[string]error{},
	}
}

// NewID returns a random 64 hex digit container ID, as Docker mints them.
func NewID() string {
	id := make([]byte, 32)
	if _, err := rand.Read(id); err != nil {
		panic(err)
	}
	return hex.EncodeToString(id)
}

// SetService adds or replaces a service, keyed by its ID.
func (c *Client) SetService(svc dockboard.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[svc.ID] = svc
}

// RemoveService removes the service with the given ID together with its
// stats, if any.
func (c *Client) RemoveService(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, id)
	delete(c.stats, id)
}

// SetStats sets the stats sample reported for the service with the given ID.
func (c *Client) SetStats(id string, sample dockboard.StatsSample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[id] = sample
}

// FailListWith injects err into all subsequent List calls; a nil err
// restores normal operations.
func (c *Client) FailListWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listErr = err
}

// FailStatsWith injects err into subsequent SampleStats calls for the
// service with the given ID; a nil err restores normal operations.
func (c *Client) FailStatsWith(id string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.statsErrs, id)
		return
	}
	c.statsErrs[id] = err
}

// List returns the current set of mocked services.
func (c *Client) List(ctx context.Context) ([]dockboard.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.listErr; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, engine.NewError(engine.Unreachable, "list", "", err)
	}
	services := make([]dockboard.Service, 0, len(c.services))
	for _, svc := range c.services {
		services = append(services, svc)
	}
	return services, nil
}

// SampleStats returns the stats sample set for the service with the given
// ID, stamped with the current time. Services without stats set, as well as
// unknown IDs, report a not-found engine error.
func (c *Client) SampleStats(ctx context.Context, id string) (dockboard.StatsSample, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.statsErrs[id]; err != nil {
		return dockboard.StatsSample{}, err
	}
	if err := ctx.Err(); err != nil {
		return dockboard.StatsSample{}, engine.NewError(engine.Unreachable, "stats", id, err)
	}
	sample, ok := c.stats[id]
	if !ok {
		return dockboard.StatsSample{}, engine.NewError(engine.NotFound, "stats", id,
			fmt.Errorf("no such service %q", id))
	}
	sample.SampledAt = time.Now().UTC()
	return sample, nil
}

// ID returns a stable mock engine identifier.
func (c *Client) ID(ctx context.Context) string {
	return "mockruntime"
}

// API returns the (fake) API endpoint this mock pretends to serve.
func (c *Client) API() string {
	return "unix:///var/run/mockruntime.sock"
}

// Close releases the mock, which is a no-op.
func (c *Client) Close() error {
	return nil
}
