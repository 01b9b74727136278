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

package resolver

import (
	"context"
	"errors"
	"fmt"

	"dirpx.dev/gid/apis"
	"dirpx.dev/gid/strategy"
)

// ErrNilIdentifier is returned when Resolve is handed a nil identifier.
var ErrNilIdentifier = errors.New("gid(resolver): nil identifier")

// New constructs an apis.Resolver that looks models up in reg, checks
// constraints with the given matchers and fetches records through locs.
// Nil matchers are ignored; with none left, strategy.Default() is used.
// The returned resolver is safe for concurrent use provided reg, locs and
// the matchers are.
func New(cfg apis.Config, reg apis.Registry, locs apis.Locators, matchers ...apis.Matcher) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Matcher, 0, len(matchers))
	for _, m := range matchers {
		if m != nil {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		out = strategy.Default()
	}
	return &resolver{cfg: cfg, reg: reg, locs: locs, matchers: out}
}

// resolver is an immutable resolution pipeline: registry lookup, constraint
// check, locator dispatch.
type resolver struct {
	cfg      apis.Config
	reg      apis.Registry
	locs     apis.Locators
	matchers []apis.Matcher
}

// Resolve implements apis.Resolver.
func (r *resolver) Resolve(ctx context.Context, id apis.GlobalID, only apis.Constraint) (any, error) {
	if id == nil {
		return nil, ErrNilIdentifier
	}

	m, ok := r.reg.Lookup(id.ModelType())
	if !ok {
		r.cfg.Logger.Warn().
			Str("app", id.App()).
			Str("model_type", id.ModelType()).
			Msg("gid: no model registered for identifier")
		return nil, &apis.ResolveError{Kind: apis.UnknownModelType, ID: text(id), Err: apis.ErrUnknownModelType}
	}

	if !strategy.Satisfies(m, only, r.cfg, r.matchers...) {
		r.cfg.Logger.Debug().
			Str("model_type", m.Name()).
			Str("model_id", id.ModelID()).
			Msg("gid: model does not satisfy constraint")
		return nil, nil
	}

	var loc apis.Locator
	if r.locs != nil {
		loc, ok = r.locs.For(id.App())
	}
	if !ok || loc == nil {
		return nil, &apis.ResolveError{Kind: apis.NoLocator, ID: text(id), Err: apis.ErrNoLocator}
	}

	rec, err := loc.Locate(ctx, m, id.ModelID())
	if err != nil {
		if r.cfg.IgnoreMissing && errors.Is(err, apis.ErrRecordNotFound) {
			r.cfg.Logger.Debug().
				Str("app", id.App()).
				Str("model_type", m.Name()).
				Str("model_id", id.ModelID()).
				Msg("gid: record not found")
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// ResolveMany implements apis.Resolver.
func (r *resolver) ResolveMany(ctx context.Context, ids []apis.GlobalID, only apis.Constraint) ([]any, error) {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		rec, err := r.Resolve(ctx, id, only)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

// text renders id for error messages.
func text(id apis.GlobalID) string {
	if s, ok := id.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("gid://%s/%s/%s", id.App(), id.ModelType(), id.ModelID())
}
