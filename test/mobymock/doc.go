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
Package mobymock provides a mock Docker API client for unit tests,
implementing only the few service API methods the dockboard Docker adapter
actually uses: listing containers, taking single stats readings, pinging,
and querying daemon info. Mocked containers and injected failures can be
changed at any time, also while a test is using the mock concurrently.
*/
package mobymock
