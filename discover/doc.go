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

/*
Package discover implements the polling discovery engine of dockboard: it
periodically lists the services of a container engine, samples resource
stats for each of them, and publishes the result as an immutable snapshot
to a snapshot cache.

A discovery Engine never retries failed engine API calls itself and never
invalidates the last published snapshot when the engine becomes
unreachable: readers keep seeing the most recent successful discovery,
aging but complete, until a later cycle succeeds again. Failed stats
samples for individual services carry the service's previous sample over
into the new snapshot, so a single flaky stats read does not blank out a
service's gauges.
*/
package discover
