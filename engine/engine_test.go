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
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("classified runtime failures", func() {

	It("stringifies failure kinds", func() {
		Expect(Unreachable.String()).To(Equal("unreachable"))
		Expect(NotFound.String()).To(Equal("not found"))
		Expect(Malformed.String()).To(Equal("malformed"))
		Expect(Kind(42).String()).To(Equal("Kind(42)"))
	})

	It("renders failures with and without container IDs", func() {
		cause := errors.New("connection refused")
		Expect(NewError(Unreachable, "list", "", cause).Error()).
			To(Equal("runtime list: unreachable: connection refused"))
		Expect(NewError(NotFound, "stats", "1234", nil).Error()).
			To(Equal("runtime stats of container 1234: not found"))
	})

	It("classifies wrapped failures", func() {
		err := fmt.Errorf("cycle failed: %w", NewError(NotFound, "stats", "1234", nil))
		Expect(IsNotFound(err)).To(BeTrue())
		Expect(IsUnreachable(err)).To(BeFalse())
		Expect(IsMalformed(err)).To(BeFalse())
	})

	It("never classifies unrelated errors", func() {
		err := errors.New("something else entirely")
		Expect(IsNotFound(err)).To(BeFalse())
		Expect(IsUnreachable(err)).To(BeFalse())
		Expect(IsMalformed(err)).To(BeFalse())
		Expect(IsNotFound(nil)).To(BeFalse())
	})

	It("unwraps to the underlying cause", func() {
		cause := errors.New("socket gone")
		Expect(errors.Is(NewError(Unreachable, "ping", "", cause), cause)).To(BeTrue())
	})

})
