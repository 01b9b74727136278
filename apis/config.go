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
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Config carries read-only knobs for identifier creation and resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// App is the application tag used when an identifier is created from a
	// record without naming an app explicitly.
	App string

	// IgnoreMissing makes a record the locator reports as not found resolve
	// to nil instead of an error.
	IgnoreMissing bool

	// MaxUnwrap limits pointer unwrapping when a Go type is normalized for
	// model bindings (BoundTo, LookupType, Create).
	MaxUnwrap int

	// SealOnResolve seals the process-wide registry on the first resolution.
	SealOnResolve bool

	// Logger receives resolution diagnostics.
	Logger zerolog.Logger

	// Tracer, when non-nil, wraps resolution in spans.
	Tracer trace.Tracer
}
