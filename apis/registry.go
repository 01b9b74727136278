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

import "reflect"

// Registry maps model type names (and, optionally, Go types) to model
// descriptors. It is the read-mostly type table resolution runs against.
// Implementations must be safe for concurrent reads.
type Registry interface {
	// Register adds a model. Re-registering the same model is a no-op;
	// a different model under an already used name is a conflict.
	Register(m *Model) error
	// Lookup returns the model registered under name.
	Lookup(name string) (m *Model, ok bool)
	// LookupType returns the model bound to the (pointer-normalized) Go type t.
	LookupType(t reflect.Type) (m *Model, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []*Model
	// Count returns the number of registered models.
	Count() int
	// Reset clears all registered models. A sealed registry stays sealed.
	Reset()
	// Seal switches the registry to read-only; further Register calls fail.
	Seal()
	// Sealed reports whether Seal has been called.
	Sealed() bool
}
