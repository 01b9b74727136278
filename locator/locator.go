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

// Package locator holds helpers for composing apis.Locator values: a
// function adapter and a per-app router.
package locator

import (
	"context"
	"strings"
	"sync"

	"dirpx.dev/gid/apis"
)

// Func adapts a plain function to apis.Locator.
type Func func(ctx context.Context, m *apis.Model, id string) (any, error)

// Locate calls f(ctx, m, id).
func (f Func) Locate(ctx context.Context, m *apis.Model, id string) (any, error) {
	return f(ctx, m, id)
}

// Ensure Func implements apis.Locator.
var _ apis.Locator = Func(nil)

// NewMux returns a Mux whose fallback is def (which may be nil).
func NewMux(def apis.Locator) *Mux {
	return &Mux{def: def, apps: make(map[string]apis.Locator)}
}

// Mux routes each app tag to its own locator, falling back to a default.
// App tags are matched case-insensitively, like identifiers canonicalize them.
type Mux struct {
	mu   sync.RWMutex
	def  apis.Locator
	apps map[string]apis.Locator
}

// Ensure Mux implements apis.Locators.
var _ apis.Locators = (*Mux)(nil)

// Use routes app to loc. A nil loc removes the route.
func (x *Mux) Use(app string, loc apis.Locator) {
	app = strings.ToLower(app)

	x.mu.Lock()
	defer x.mu.Unlock()
	if loc == nil {
		delete(x.apps, app)
		return
	}
	x.apps[app] = loc
}

// SetDefault replaces the fallback locator.
func (x *Mux) SetDefault(loc apis.Locator) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.def = loc
}

// For returns the locator for app, or the default one.
func (x *Mux) For(app string) (apis.Locator, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if loc, ok := x.apps[strings.ToLower(app)]; ok {
		return loc, true
	}
	return x.def, x.def != nil
}
