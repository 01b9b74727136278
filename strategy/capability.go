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

// NewCapabilityStrategy creates an apis.Matcher that accepts a model for a
// capability descriptor the model declares (directly or through its parent).
func NewCapabilityStrategy() apis.Matcher {
	return capabilityStrategy{}
}

// capabilityStrategy checks static declarations only; no method-set or
// structural inspection is ever done.
type capabilityStrategy struct{}

// Ensure capabilityStrategy implements apis.Matcher.
var _ apis.Matcher = capabilityStrategy{}

// Match reports whether d is a capability m declares.
func (capabilityStrategy) Match(m *apis.Model, d apis.Descriptor, _ apis.Config) bool {
	if m == nil {
		return false
	}
	c, ok := d.(*apis.Capability)
	if !ok {
		return false
	}
	return m.HasCapability(c)
}
