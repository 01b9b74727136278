/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is returned (wrapped) by locators when no record exists.
	ErrRecordNotFound = errors.New("gid: record not found")
	// ErrUnknownModelType is wrapped by ResolveError when no model is registered
	// under an identifier's model type name.
	ErrUnknownModelType = errors.New("gid: unknown model type")
	// ErrNoLocator is wrapped by ResolveError when no locator serves an app.
	ErrNoLocator = errors.New("gid: no locator for app")
)

// ResolveErrorKind classifies a ResolveError.
type ResolveErrorKind uint8

const (
	// UnknownModelType: the registry has no model for the identifier's type name.
	UnknownModelType ResolveErrorKind = iota + 1
	// NoLocator: neither an app-specific nor a default locator is configured.
	NoLocator
)

// String returns the kind's name.
func (k ResolveErrorKind) String() string {
	switch k {
	case UnknownModelType:
		return "UnknownModelType"
	case NoLocator:
		return "NoLocator"
	default:
		return "Unknown"
	}
}

// ResolveError reports why an identifier could not be resolved. It signals
// a caller or configuration bug, never a missing record.
type ResolveError struct {
	Kind ResolveErrorKind
	// ID is the text form of the identifier being resolved.
	ID string
	// Err is the sentinel the error unwraps to.
	Err error
}

// Error implements error.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.ID)
}

// Unwrap returns the wrapped sentinel.
func (e *ResolveError) Unwrap() error { return e.Err }
