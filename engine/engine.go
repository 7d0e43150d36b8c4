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

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/lincooln/dockboard"
)

// Client defines the generic methods needed in order to discover the
// containers of a container runtime and sample their resource consumption,
// regardless of the specific type of runtime.
type Client interface {
	// List all containers currently known to the runtime, including stopped
	// ones, converted into the strict service model.
	List(ctx context.Context) ([]dockboard.Service, error)
	// SampleStats takes a single point-in-time resource reading for the
	// container with the given ID.
	SampleStats(ctx context.Context, id string) (dockboard.StatsSample, error)

	// (More or less) unique runtime identifier; the exact format is
	// runtime-specific.
	ID(ctx context.Context) string
	// Runtime API endpoint this client talks to.
	API() string

	// Close releases any client resources, if necessary.
	Close() error
}

// Kind classifies runtime client failures.
type Kind int

// The failure kinds a runtime client reports.
const (
	// Unreachable: the runtime's API endpoint cannot be talked to (socket or
	// connection failure, timeout, daemon restarting).
	Unreachable Kind = iota
	// NotFound: the container vanished between listing and querying it.
	NotFound
	// Malformed: the runtime answered with an unexpected response shape.
	Malformed
)

// String returns the failure kind in human-readable form.
func (k Kind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case NotFound:
		return "not found"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a classified runtime client failure. Errors are transient and
// per-call; callers decide whether and how to retry.
type Error struct {
	Kind Kind   // failure classification.
	Op   string // failing operation, such as "list" or "stats".
	ID   string // affected container ID, if the failure is per-container.
	Err  error  // underlying cause, if any.
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "runtime " + e.Op
	if e.ID != "" {
		msg += " of container " + e.ID
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// NewError returns a classified runtime client failure.
func NewError(kind Kind, op, id string, err error) *Error {
	return &Error{Kind: kind, Op: op, ID: id, Err: err}
}

// kindOf returns the failure kind of err and whether err actually is a
// classified runtime client failure.
func kindOf(err error) (Kind, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind, true
	}
	return 0, false
}

// IsUnreachable reports whether err is a runtime client failure caused by
// the runtime being unreachable.
func IsUnreachable(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == Unreachable
}

// IsNotFound reports whether err is a runtime client failure caused by the
// queried container having vanished.
func IsNotFound(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == NotFound
}

// IsMalformed reports whether err is a runtime client failure caused by an
// unexpected response shape.
func IsMalformed(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == Malformed
}
