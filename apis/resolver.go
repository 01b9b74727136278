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

// Resolver turns a global identifier back into a live record.
type Resolver interface {
	// Resolve returns the record named by id, or (nil, nil) when the record's
	// model does not satisfy only (or the record is missing and missing
	// records are ignored). An empty only means no constraint.
	Resolve(ctx context.Context, id GlobalID, only Constraint) (any, error)

	// ResolveMany resolves ids in order, dropping the ones Resolve would
	// return as nil. It stops at the first error.
	ResolveMany(ctx context.Context, ids []GlobalID, only Constraint) ([]any, error)
}
