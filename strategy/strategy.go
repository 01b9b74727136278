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

// Default returns the standard matcher order: self, ancestor, capability.
func Default() []apis.Matcher {
	return []apis.Matcher{
		NewSelfStrategy(),
		NewAncestorStrategy(),
		NewCapabilityStrategy(),
	}
}

// Satisfies reports whether m satisfies the constraint under the given
// matchers. An empty constraint is always satisfied. Descriptors are tried
// in order and the first match short-circuits.
func Satisfies(m *apis.Model, only apis.Constraint, cfg apis.Config, matchers ...apis.Matcher) bool {
	if only.Empty() {
		return true
	}
	if m == nil {
		return false
	}
	for _, d := range only {
		if d == nil {
			continue
		}
		for _, mt := range matchers {
			if mt != nil && mt.Match(m, d, cfg) {
				return true
			}
		}
	}
	return false
}
