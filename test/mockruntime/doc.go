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
Package mockruntime provides an in-memory container engine client for unit
tests, implementing the engine.Client contract without any daemon behind
it. Services and their stats can be set, changed, and removed at any time,
also while a discovery engine is polling the mock concurrently, and both
listing and sampling can be made to fail on demand.
*/
package mockruntime
