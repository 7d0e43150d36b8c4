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
	"regexp"
	"slices"
	"strconv"
)

// Sort methods for ordering the dashboard's service list.
const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPortsAsc  = "ports_asc"
	SortPortsDesc = "ports_desc"
)

// sortMethods enumerates the valid sort methods.
var sortMethods = []string{SortNameAsc, SortNameDesc, SortPortsAsc, SortPortsDesc}

// SortSettings control the order in which services are presented.
type SortSettings struct {
	// Method is one of the Sort* method names.
	Method string `json:"method"`
	// GroupByStatus lists running services before stopped ones when set.
	GroupByStatus bool `json:"group_by_status"`
}

// ContainerSettings are the per-container presentation overrides an operator
// may choose for a single service, keyed by the service's runtime ID.
type ContainerSettings struct {
	Visible    bool   `json:"visible"`     // hidden services are omitted from the dashboard.
	CustomName string `json:"custom_name"` // overrides the derived display name when set.
	CustomURL  string `json:"custom_url"`  // overrides the derived service URL when set.
	Icon       string `json:"icon"`        // icon shown on the service card.
}

// UnmarshalJSON fills fields absent from the stored document with their
// defaults, so records written by older versions keep their meaning.
func (c *ContainerSettings) UnmarshalJSON(data []byte) error {
	aux := struct {
		Visible    *bool   `json:"visible"`
		CustomName *string `json:"custom_name"`
		CustomURL  *string `json:"custom_url"`
		Icon       *string `json:"icon"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = DefaultContainerSettings()
	if aux.Visible != nil {
		c.Visible = *aux.Visible
	}
	if aux.CustomName != nil {
		c.CustomName = *aux.CustomName
	}
	if aux.CustomURL != nil {
		c.CustomURL = *aux.CustomURL
	}
	if aux.Icon != nil {
		c.Icon = *aux.Icon
	}
	return nil
}

// DefaultContainerSettings returns the presentation overrides assumed for a
// service the operator never touched: visible, no overrides, whale icon.
func DefaultContainerSettings() ContainerSettings {
	return ContainerSettings{Visible: true, Icon: "🐳"}
}

// Settings are the operator-chosen preferences of one dashboard deployment.
// There is a single shared settings record per deployment; settings are not
// scoped per user.
type Settings struct {
	// Favorites is the sorted set of favorited service IDs. Membership is a
	// preference pointer, not ownership: a favorited ID may reference a
	// service that is no longer present.
	Favorites []string `json:"favorites"`
	// Appearance maps each appearance option name to its chosen value; all
	// options of the fixed option set are always present.
	Appearance map[string]string `json:"appearance"`
	// Sort is the chosen service display order.
	Sort SortSettings `json:"sort_settings"`
	// Containers holds per-container presentation overrides by service ID.
	Containers map[string]ContainerSettings `json:"containers"`
}

// Default returns the settings assumed before the operator ever wrote any.
func Default() Settings {
	appearance := make(map[string]string, len(appearanceOptions))
	for name, opt := range appearanceOptions {
		appearance[name] = opt.def
	}
	return Settings{
		Favorites:  []string{},
		Appearance: appearance,
		Sort:       SortSettings{Method: SortNameAsc, GroupByStatus: true},
		Containers: map[string]ContainerSettings{},
	}
}

// IsFavorite reports whether the service with the given ID is favorited.
func (s Settings) IsFavorite(id string) bool {
	_, ok := slices.BinarySearch(s.Favorites, id)
	return ok
}

// Container returns the presentation overrides for the service with the
// given ID, falling back to the defaults for services the operator never
// configured.
func (s Settings) Container(id string) ContainerSettings {
	if cs, ok := s.Containers[id]; ok {
		return cs
	}
	return DefaultContainerSettings()
}

// appearanceOption describes one member of the fixed appearance option set:
// its default value and how to validate chosen values.
type appearanceOption struct {
	def      string
	validate func(value string) string // non-empty reason on rejection.
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func enumOf(values ...string) func(string) string {
	return func(value string) string {
		if slices.Contains(values, value) {
			return ""
		}
		return "must be one of: " + join(values)
	}
}

func color(value string) string {
	if hexColor.MatchString(value) {
		return ""
	}
	return "must be a #rrggbb color"
}

func smallInt(min, max int) func(string) string {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil || n < min || n > max {
			return "must be an integer between " +
				strconv.Itoa(min) + " and " + strconv.Itoa(max)
		}
		return ""
	}
}

func join(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}

// appearanceOptions is the fixed, enumerated appearance option set. Option
// names outside this map and values rejected by an option's validator are
// validation errors.
var appearanceOptions = map[string]appearanceOption{
	"theme":           {def: "dark", validate: enumOf("dark", "light")},
	"background":      {def: "#1a1a1a", validate: color},
	"card_background": {def: "#2d2d2d", validate: color},
	"text_color":      {def: "#e0e0e0", validate: color},
	"accent_color":    {def: "#4CAF50", validate: color},
	"border_color":    {def: "#404040", validate: color},
	"border_radius":   {def: "8", validate: smallInt(0, 32)},
	"font_size_base":  {def: "14", validate: smallInt(8, 32)},
	"font_size_large": {def: "16", validate: smallInt(8, 32)},
	"font_size_small": {def: "12", validate: smallInt(8, 32)},
}

// AppearanceOptions returns the names of the fixed appearance option set,
// sorted.
func AppearanceOptions() []string {
	names := make([]string, 0, len(appearanceOptions))
	for name := range appearanceOptions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// validateAppearance checks an option/value pair against the fixed option
// set, returning a *ValidationError on rejection.
func validateAppearance(option, value string) error {
	opt, ok := appearanceOptions[option]
	if !ok {
		return &ValidationError{Field: option, Value: value, Reason: "unknown appearance option"}
	}
	if reason := opt.validate(value); reason != "" {
		return &ValidationError{Field: option, Value: value, Reason: reason}
	}
	return nil
}

// validateSort checks sort settings for a known method.
func validateSort(sort SortSettings) error {
	if !slices.Contains(sortMethods, sort.Method) {
		return &ValidationError{Field: "sort.method", Value: sort.Method,
			Reason: "must be one of: " + join(sortMethods)}
	}
	return nil
}
