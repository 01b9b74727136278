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
	"reflect"
)

// Kind tells model descriptors apart from capability descriptors.
type Kind uint8

const (
	// KindModel marks a concrete (or abstract parent) model type.
	KindModel Kind = iota + 1
	// KindCapability marks an abstract conformance marker.
	KindCapability
)

// String returns a short, lowercase label for k.
func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindCapability:
		return "capability"
	default:
		return "unknown"
	}
}

// Descriptor is anything a resolution constraint may name: a model type
// (concrete or a supertype of other models) or a capability.
//
// The interface is sealed; only *Model and *Capability implement it.
type Descriptor interface {
	// Name returns the descriptor's registered name (e.g. "Person::Child").
	Name() string
	// Kind reports whether the descriptor is a model or a capability.
	Kind() Kind

	descriptor()
}

// SameDescriptor reports whether a and b denote the same descriptor.
// Identity is (kind, name); a model never equals a capability.
func SameDescriptor(a, b Descriptor) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.Name() == b.Name()
}

// Capability is an abstract conformance marker a model declares statically.
type Capability struct {
	name string
}

// NewCapability returns a capability descriptor with the given name.
func NewCapability(name string) *Capability {
	return &Capability{name: name}
}

// Name returns the capability name.
func (c *Capability) Name() string { return c.name }

// Kind returns KindCapability.
func (*Capability) Kind() Kind { return KindCapability }

func (*Capability) descriptor() {}

// Model describes a model type: its name, its single parent (if any),
// the capabilities it satisfies and, optionally, the Go type its records use.
//
// A Model is immutable once built. Capabilities declared on a parent are
// inherited, so the capability set is fixed at definition time.
type Model struct {
	name   string
	parent *Model
	caps   []*Capability
	goType reflect.Type
}

// ModelOption configures a Model under construction.
type ModelOption func(*Model)

// Extends sets the parent of the model. Parent capabilities are inherited.
func Extends(parent *Model) ModelOption {
	return func(m *Model) {
		m.parent = parent
	}
}

// Implements declares capabilities the model satisfies.
func Implements(caps ...*Capability) ModelOption {
	return func(m *Model) {
		for _, c := range caps {
			if c != nil {
				m.caps = append(m.caps, c)
			}
		}
	}
}

// BoundTo binds the model to the Go type used for its records, so that
// records can be turned back into identifiers without implementing Namer.
func BoundTo(t reflect.Type) ModelOption {
	return func(m *Model) {
		m.goType = t
	}
}

// BoundToType is the generic form of BoundTo.
func BoundToType[T any]() ModelOption {
	return BoundTo(reflect.TypeOf((*T)(nil)).Elem())
}

// NewModel builds a model descriptor.
func NewModel(name string, opts ...ModelOption) *Model {
	m := &Model{name: name}
	for _, opt := range opts {
		opt(m)
	}

	// Fold inherited capabilities in after the model's own, skipping duplicates.
	if m.parent != nil {
		for _, c := range m.parent.caps {
			if !m.hasCapability(c) {
				m.caps = append(m.caps, c)
			}
		}
	}
	return m
}

// Name returns the model type name.
func (m *Model) Name() string { return m.name }

// Kind returns KindModel.
func (*Model) Kind() Kind { return KindModel }

func (*Model) descriptor() {}

// Parent returns the direct parent model, or nil.
func (m *Model) Parent() *Model { return m.parent }

// GoType returns the Go type bound to the model, or nil.
func (m *Model) GoType() reflect.Type { return m.goType }

// Ancestors returns the ancestor chain nearest-first, at most max entries.
// A non-positive max means no limit; cycles are cut at the first repeat.
func (m *Model) Ancestors(max int) []*Model {
	var out []*Model
	seen := map[*Model]struct{}{m: {}}
	for p := m.parent; p != nil; p = p.parent {
		if max > 0 && len(out) >= max {
			break
		}
		if _, ok := seen[p]; ok {
			break
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Capabilities returns a copy of the declared capability set.
func (m *Model) Capabilities() []*Capability {
	out := make([]*Capability, len(m.caps))
	copy(out, m.caps)
	return out
}

// HasCapability reports whether c is among the model's declared capabilities.
func (m *Model) HasCapability(c *Capability) bool {
	if c == nil {
		return false
	}
	return m.hasCapability(c)
}

func (m *Model) hasCapability(c *Capability) bool {
	for _, own := range m.caps {
		if own == c || own.name == c.name {
			return true
		}
	}
	return false
}

// Constraint restricts resolution to records whose model matches at least
// one descriptor. A nil or empty Constraint means "no constraint".
type Constraint []Descriptor

// Only builds a Constraint from the given descriptors, dropping nils.
func Only(ds ...Descriptor) Constraint {
	out := make(Constraint, 0, len(ds))
	for _, d := range ds {
		if d != nil && !isNilDescriptor(d) {
			out = append(out, d)
		}
	}
	return out
}

// Empty reports whether the constraint imposes no restriction.
func (c Constraint) Empty() bool { return len(c) == 0 }

// isNilDescriptor catches typed nil pointers wrapped in the interface.
func isNilDescriptor(d Descriptor) bool {
	switch v := d.(type) {
	case *Model:
		return v == nil
	case *Capability:
		return v == nil
	}
	return false
}
