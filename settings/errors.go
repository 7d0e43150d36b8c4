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
	"errors"
	"fmt"
)

// ValidationError reports a caller-supplied preference value outside the
// allowed set. Validation errors are never retried and leave the stored
// settings untouched; callers surface them to the operator verbatim.
type ValidationError struct {
	Field  string // offending option or field name.
	Value  string // rejected value.
	Reason string // why the value was rejected.
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a settings validation
// error, as opposed to a storage failure.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
