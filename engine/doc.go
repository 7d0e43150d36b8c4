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
Package engine defines the generic client contract for interrogating a
container runtime about its containers and their resource consumption,
regardless of the specific runtime behind it.

Implementations (see subpackage moby) are strict adapter boundaries: they
validate and convert the runtime's native responses into the plain model of
the dockboard root package right at the edge, so no raw runtime payload ever
leaks into the layers above. They issue the outbound query and nothing more:
no retries (retry policy belongs to the caller) and no local state.

All failures are reported as [*Error] carrying one of three kinds:
[Unreachable] for socket or connection trouble, [NotFound] for containers
that vanished between listing and querying, and [Malformed] for responses
the adapter cannot make sense of.
*/
package engine
