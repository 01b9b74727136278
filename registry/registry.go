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

package registry

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/gid/apis"
	uref "dirpx.dev/gid/utils/reflect"
)

var (
	// ErrNilModel is returned when a nil model is provided.
	ErrNilModel = errors.New("gid(registry): nil model provided")
	// ErrEmptyName is returned when a model has an empty name.
	ErrEmptyName = errors.New("gid(registry): empty model name")
	// ErrConflictingRegistration indicates an attempt to register a different
	// model under a used name, or to bind a Go type to a second model.
	ErrConflictingRegistration = errors.New("gid(registry): conflicting model registration")
	// ErrSealed is returned by Register once the registry is sealed.
	ErrSealed = errors.New("gid(registry): registry is sealed")
)

// New constructs a Registry. Only MaxUnwrap and Logger are used here.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg supplies the logger and the pointer unwrap limit.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// byName maps model names to models.
	byName sync.Map // map[string]*apis.Model
	// byType maps normalized Go types to models.
	byType sync.Map // map[reflect.Type]*apis.Model
	// count tracks the number of registered models.
	count int
	// sealed is set once by Seal.
	sealed atomic.Bool
}

// Register adds m under m.Name(). It is idempotent for the same model.
func (r *registry) Register(m *apis.Model) error {
	// Validate inputs early.
	if m == nil {
		return ErrNilModel
	}
	if m.Name() == "" {
		return ErrEmptyName
	}
	if r.sealed.Load() {
		return ErrSealed
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.byName.Load(m.Name()); ok {
		if old.(*apis.Model) == m {
			return nil
		}
		return ErrConflictingRegistration
	}

	var gt reflect.Type
	if m.GoType() != nil {
		t, err := uref.Normalize(m.GoType(), r.cfg.MaxUnwrap)
		if err != nil {
			return err
		}
		gt = t
	}

	// Write path: guard with a mutex to keep both indexes and the counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}
	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.byName.Load(m.Name()); ok {
		if old.(*apis.Model) == m {
			return nil
		}
		return ErrConflictingRegistration
	}
	if gt != nil {
		if _, ok := r.byType.Load(gt); ok {
			return ErrConflictingRegistration
		}
		r.byType.Store(gt, m)
	}

	r.byName.Store(m.Name(), m)
	r.count++

	r.cfg.Logger.Debug().Str("model", m.Name()).Msg("gid: model registered")
	return nil
}

// Lookup returns the model registered under name.
func (r *registry) Lookup(name string) (*apis.Model, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.byName.Load(name); ok {
		return v.(*apis.Model), true
	}
	return nil, false
}

// LookupType returns the model bound to t after pointer normalization.
func (r *registry) LookupType(t reflect.Type) (*apis.Model, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg.MaxUnwrap)
	if err != nil {
		return nil, false
	}
	if v, ok := r.byType.Load(nt); ok {
		return v.(*apis.Model), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []*apis.Model {
	entries := make([]*apis.Model, 0, r.Count())
	r.byName.Range(func(_, value any) bool {
		entries = append(entries, value.(*apis.Model))
		return true
	})
	return entries
}

// Count returns the number of registered models.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered models.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName.Clear()
	r.byType.Clear()
	r.count = 0
}

// Seal makes the registry read-only.
func (r *registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the registry is read-only.
func (r *registry) Sealed() bool {
	return r.sealed.Load()
}
