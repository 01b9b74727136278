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

package strategy

import (
	"dirpx.dev/gid/apis"
)

// NewAncestorStrategy creates an apis.Matcher that accepts a model for a
// descriptor naming one of its ancestors (supertype match).
func NewAncestorStrategy() apis.Matcher {
	return ancestorStrategy{}
}

// ancestorStrategy walks the whole single-parent chain, nearest-first.
// Chains are finite since a parent must exist before its children.
type ancestorStrategy struct{}

// Ensure ancestorStrategy implements apis.Matcher.
var _ apis.Matcher = ancestorStrategy{}

// Match reports whether d is a model in m's ancestor chain.
func (ancestorStrategy) Match(m *apis.Model, d apis.Descriptor, _ apis.Config) bool {
	if m == nil || d == nil || d.Kind() != apis.KindModel {
		return false
	}
	for _, a := range m.Ancestors(0) {
		if apis.SameDescriptor(a, d) {
			return true
		}
	}
	return false
}
