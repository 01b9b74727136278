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
	"context"
)

// Locator fetches a record given its model and model-local id. It is the
// record store behind resolution; how records are found is up to it.
//
// Locate must return an error wrapping ErrRecordNotFound when no record
// exists for (m, id). Any other error is treated as a fault and surfaced
// to the caller untouched.
type Locator interface {
	Locate(ctx context.Context, m *Model, id string) (any, error)
}

// Locators picks the locator responsible for an application tag.
type Locators interface {
	// For returns the locator for app, falling back to a default if one is set.
	For(app string) (Locator, bool)
}
