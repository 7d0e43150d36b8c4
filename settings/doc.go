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
Package settings persists the operator's dashboard preferences: favorite
services, appearance options, the display sort order, and per-container
presentation overrides.

Preferences have a lifecycle independent of, and longer than, the runtime
snapshot: they are created on first write, survive process restarts, and may
reference services that no longer exist (such dangling references are inert,
not errors). The [Store] keeps them in a single SQLite database as one JSON
value per preference group, so documents written by newer versions remain
readable: unknown keys are ignored, missing keys fall back to their
defaults.

All mutations are serialized through the store and committed before the
mutating call returns; concurrent writers cannot produce a torn merge of two
updates to different preference groups.
*/
package settings
