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

// Package memory provides an in-process record store usable as an apis.Locator.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/gid/apis"
)

// ErrNilModel is returned by Put when no model is given.
var ErrNilModel = errors.New("gid(memory): nil model provided")

type key struct {
	model string
	id    string
}

// Store keeps records keyed by (model name, model id).
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[key]any
}

// Ensure Store implements apis.Locator.
var _ apis.Locator = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{records: make(map[key]any)}
}

// Put stores rec as the record (m, id), replacing any previous one.
func (s *Store) Put(m *apis.Model, id string, rec any) error {
	if m == nil {
		return ErrNilModel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key{model: m.Name(), id: id}] = rec
	return nil
}

// Delete removes the record (m, id). Deleting a missing record is a no-op.
func (s *Store) Delete(m *apis.Model, id string) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key{model: m.Name(), id: id})
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Locate returns the record (m, id) or an error wrapping apis.ErrRecordNotFound.
func (s *Store) Locate(ctx context.Context, m *apis.Model, id string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNilModel
	}

	s.mu.RLock()
	rec, ok := s.records[key{model: m.Name(), id: id}]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", apis.ErrRecordNotFound, m.Name(), id)
	}
	return rec, nil
}
