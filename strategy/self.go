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

// NewSelfStrategy creates an apis.Matcher that accepts a model for a
// descriptor naming that very model.
func NewSelfStrategy() apis.Matcher {
	return selfStrategy{}
}

// selfStrategy is the fast path: a constraint naming the concrete model.
type selfStrategy struct{}

// Ensure selfStrategy implements apis.Matcher.
var _ apis.Matcher = selfStrategy{}

// Match reports whether d is m itself.
func (selfStrategy) Match(m *apis.Model, d apis.Descriptor, _ apis.Config) bool {
	if m == nil || d == nil {
		return false
	}
	return apis.SameDescriptor(m, d)
}
