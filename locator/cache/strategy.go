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

package cache

import (
	"fmt"
	"strings"
)

// Strategy selects how a caching locator retains records.
//
// Only expiry-based retention is offered; go-cache has no capacity bound,
// so recency/frequency eviction policies have nothing to evict against.
type Strategy int

const (
	// TTL keeps each successfully located record for a fixed duration.
	//
	// Lookups never return an expired entry; expired entries are purged
	// by the cache's janitor on its cleanup interval.
	TTL Strategy = iota

	// None disables caching: every lookup goes to the wrapped locator.
	None
)

// String returns the canonical, lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case TTL:
		return "ttl"
	case None:
		return "none"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ttl":
		return TTL, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("gid(cache): unknown strategy %q", s)
	}
}
