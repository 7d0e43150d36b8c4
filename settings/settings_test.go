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

package settings

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("settings", func() {

	It("defaults to a visible whale", func() {
		cs := DefaultContainerSettings()
		Expect(cs.Visible).To(BeTrue())
		Expect(cs.Icon).To(Equal("🐳"))
		Expect(cs.CustomName).To(BeEmpty())
	})

	It("defaults missing fields of stored container settings", func() {
		var cs ContainerSettings
		Expect(json.Unmarshal([]byte(`{"custom_name":"Postgres"}`), &cs)).To(Succeed())
		Expect(cs.CustomName).To(Equal("Postgres"))
		Expect(cs.Visible).To(BeTrue())
		Expect(cs.Icon).To(Equal("🐳"))

		Expect(json.Unmarshal([]byte(`{"visible":false,"icon":"🐘"}`), &cs)).To(Succeed())
		Expect(cs.Visible).To(BeFalse())
		Expect(cs.Icon).To(Equal("🐘"))
	})

	It("knows its fixed appearance option set", func() {
		names := AppearanceOptions()
		Expect(names).To(ContainElements(
			"theme", "accent_color", "border_radius", "font_size_base"))
		defaults := Default().Appearance
		Expect(defaults).To(HaveLen(len(names)))
		Expect(defaults["theme"]).To(Equal("dark"))
		Expect(defaults["accent_color"]).To(Equal("#4CAF50"))
	})

	It("answers favorite membership on the sorted set", func() {
		s := Default()
		s.Favorites = []string{"aaaa", "bbbb", "cccc"}
		Expect(s.IsFavorite("bbbb")).To(BeTrue())
		Expect(s.IsFavorite("dddd")).To(BeFalse())
		Expect(s.IsFavorite("")).To(BeFalse())
	})

	Context("validation", func() {

		It("accepts valid appearance values", func() {
			Expect(validateAppearance("theme", "light")).To(Succeed())
			Expect(validateAppearance("accent_color", "#ff00aa")).To(Succeed())
			Expect(validateAppearance("border_radius", "0")).To(Succeed())
			Expect(validateAppearance("font_size_base", "32")).To(Succeed())
		})

		It("rejects unknown options and out-of-range values", func() {
			for _, tc := range []struct{ option, value string }{
				{"blink_speed", "11"},
				{"theme", "solarized"},
				{"accent_color", "green"},
				{"accent_color", "#12345"},
				{"border_radius", "-1"},
				{"border_radius", "33"},
				{"font_size_base", "huge"},
			} {
				err := validateAppearance(tc.option, tc.value)
				Expect(err).To(HaveOccurred(), "option %q value %q", tc.option, tc.value)
				Expect(IsValidationError(err)).To(BeTrue())
			}
		})

		It("rejects unknown sort methods", func() {
			Expect(validateSort(SortSettings{Method: SortPortsDesc})).To(Succeed())
			err := validateSort(SortSettings{Method: "by_vibes"})
			Expect(err).To(HaveOccurred())
			Expect(IsValidationError(err)).To(BeTrue())
		})

	})

	It("renders validation errors for the operator", func() {
		err := &ValidationError{Field: "theme", Value: "solarized", Reason: "must be one of: dark, light"}
		Expect(err.Error()).To(Equal(`invalid value "solarized" for theme: must be one of: dark, light`))
		Expect(IsValidationError(err)).To(BeTrue())
		Expect(IsValidationError(nil)).To(BeFalse())
	})

})
