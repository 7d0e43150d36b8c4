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

package dockboard

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("snapshot cache", func() {

	It("never returns nil, not even before the first publish", func() {
		cache := NewCache()
		snap := cache.Read()
		Expect(snap).NotTo(BeNil())
		Expect(snap.Len()).To(BeZero())
	})

	It("replaces the snapshot wholesale on publish", func() {
		cache := NewCache()
		first := cache.Read()
		snap := NewSnapshot(time.Now(), map[string]Entry{
			"1234": {Service: Service{ID: "1234", Name: "foo"}},
		})
		cache.Publish(snap)
		Expect(cache.Read()).To(BeIdenticalTo(snap))
		Expect(cache.Read()).NotTo(BeIdenticalTo(first))
	})

	It("ignores nil publishes", func() {
		cache := NewCache()
		snap := NewSnapshot(time.Now(), nil)
		cache.Publish(snap)
		cache.Publish(nil)
		Expect(cache.Read()).To(BeIdenticalTo(snap))
	})

	It("serves concurrent readers during publishes", func() {
		cache := NewCache()
		done := make(chan struct{})
		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					select {
					case <-done:
						return
					default:
					}
					Expect(cache.Read()).NotTo(BeNil())
				}
			}()
		}
		for i := range 100 {
			cache.Publish(NewSnapshot(time.Now(), map[string]Entry{
				"1234": {Service: Service{ID: "1234", Name: "foo", Labels: map[string]string{
					"iteration": string(rune('a' + i%26)),
				}}},
			}))
		}
		close(done)
		wg.Wait()
	})

})
