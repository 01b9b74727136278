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

// Matcher is one pluggable type-matching rule. A Resolver combines several
// matchers (self, ancestor, capability) and accepts a model when any of them
// accepts it for any descriptor of the constraint.
type Matcher interface {
	// Match reports whether model m satisfies descriptor d under this rule.
	Match(m *Model, d Descriptor, cfg Config) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(m *Model, d Descriptor, cfg Config) bool

// Match calls f(m, d, cfg).
func (f MatcherFunc) Match(m *Model, d Descriptor, cfg Config) bool { return f(m, d, cfg) }
