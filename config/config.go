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

package config

import (
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/gid/apis"
	uref "dirpx.dev/gid/utils/reflect"
)

const (
	// DefaultApp is the app tag used by Create when none is configured.
	DefaultApp = "app"
	// DefaultIgnoreMissing represents the default for IgnoreMissing.
	// When true, records the locator cannot find resolve to nil.
	DefaultIgnoreMissing = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	DefaultMaxUnwrap = uref.DefaultMaxUnwrap
	// DefaultSealOnResolve represents the default for SealOnResolve.
	DefaultSealOnResolve = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		App:           DefaultApp,
		IgnoreMissing: DefaultIgnoreMissing,
		MaxUnwrap:     DefaultMaxUnwrap,
		SealOnResolve: DefaultSealOnResolve,
		Logger:        zerolog.Nop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithApp sets the default app tag. The tag is stored lowercased;
// it is validated when an identifier is created with it.
func WithApp(app string) Option {
	return func(c *apis.Config) {
		c.App = strings.ToLower(app)
	}
}

// WithIgnoreMissing sets the IgnoreMissing option.
func WithIgnoreMissing(ignore bool) Option {
	return func(c *apis.Config) {
		c.IgnoreMissing = ignore
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithSealOnResolve sets the SealOnResolve option.
func WithSealOnResolve(seal bool) Option {
	return func(c *apis.Config) {
		c.SealOnResolve = seal
	}
}

// WithLogger sets the logger resolution diagnostics go to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

// WithTracer makes resolvers built from the config emit spans through t.
func WithTracer(t trace.Tracer) Option {
	return func(c *apis.Config) {
		c.Tracer = t
	}
}
