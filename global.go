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

package gid

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dirpx.dev/gid/apis"
	"dirpx.dev/gid/builder"
	"dirpx.dev/gid/config"
	"dirpx.dev/gid/locator"
	uref "dirpx.dev/gid/utils/reflect"
)

// init initializes the global state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig(), mux: locator.NewMux(nil)}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, s.mux, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("gid: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("gid: builder returned nil resolver")
)

// Locate resolves id through the global resolver. With no descriptors the
// record is returned whatever its model; otherwise the model must match at
// least one of them. A mismatch yields (nil, nil).
//
// When the config asks for it, the first call seals the global registry.
func Locate(ctx context.Context, id ID, only ...apis.Descriptor) (any, error) {
	s := st.Load()
	s.sealOnResolve()
	return s.res.Resolve(ctx, id, apis.Only(only...))
}

// LocateString parses text and resolves it like Locate.
func LocateString(ctx context.Context, text string, only ...apis.Descriptor) (any, error) {
	id, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Locate(ctx, id, only...)
}

// LocateMany resolves ids in order, dropping mismatches and missing records.
func LocateMany(ctx context.Context, ids []ID, only ...apis.Descriptor) ([]any, error) {
	s := st.Load()
	s.sealOnResolve()
	gids := make([]apis.GlobalID, len(ids))
	for i, id := range ids {
		gids[i] = id
	}
	return s.res.ResolveMany(ctx, gids, apis.Only(only...))
}

// LocateAs resolves id like Locate and asserts the record to T. ok is false
// when nothing was resolved or the record is not a T.
func LocateAs[T any](ctx context.Context, id ID, only ...apis.Descriptor) (rec T, ok bool, err error) {
	v, err := Locate(ctx, id, only...)
	if err != nil || v == nil {
		return rec, false, err
	}
	rec, ok = v.(T)
	return rec, ok, nil
}

// Create returns the identifier of rec under the configured app.
// See CreateFor.
func Create(rec any) (ID, error) {
	return CreateFor(st.Load().cfg.App, rec)
}

// CreateFor returns the identifier of rec under app. The model type name
// comes from apis.Namer if rec implements it, otherwise from the model bound
// to rec's Go type in the global registry. The model id comes from
// apis.Identifiable.
func CreateFor(app string, rec any) (ID, error) {
	idf, ok := rec.(apis.Identifiable)
	if !ok {
		return ID{}, ErrNotIdentifiable
	}

	if n, ok := rec.(apis.Namer); ok {
		return New(app, n.ModelName(), idf.ModelID())
	}

	s := st.Load()
	t, err := uref.TypeOf(rec, s.cfg.MaxUnwrap)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %w", ErrUnknownRecordType, err)
	}
	m, ok := s.reg.LookupType(t)
	if !ok {
		return ID{}, ErrUnknownRecordType
	}
	return New(app, m.Name(), idf.ModelID())
}

// Register adds models to the global registry.
func Register(models ...*apis.Model) error {
	reg := st.Load().reg
	var errs []error
	for _, m := range models {
		if err := reg.Register(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Seal makes the global registry read-only.
func Seal() {
	st.Load().reg.Seal()
}

// UseLocator routes identifiers of app to loc. A nil loc removes the route.
func UseLocator(app string, loc apis.Locator) {
	st.Load().mux.Use(app, loc)
}

// SetDefaultLocator sets the locator used for apps without their own route.
func SetDefaultLocator(loc apis.Locator) {
	st.Load().mux.SetDefault(loc)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged, except for ext
// which is always replaced and the locator routes which are cleared.
// Passing nil reg/res rebuilds (and unpins) them.
//
// This is mainly used by tests to get a clean, deterministic state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	nmux := locator.NewMux(nil)

	// Registry: a fresh one, not a migrated copy, unless given.
	nreg := reg
	npreg := nreg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, nil, ext)
	}

	nres := res
	npres := nres != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, nmux, old.res, ext)
	}

	publish(&state{
		cfg:  ncfg,
		ext:  ext,
		reg:  nreg,
		res:  nres,
		bld:  nbld,
		mux:  nmux,
		preg: npreg,
		pres: npres,
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the global reg and res using the new configuration, unless pinned.
// Rebuilt registries keep their models but start unsealed.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	rebuild(&next, old)
	publish(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets and pins the global registry.
// The resolver is rebuilt over it unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.reg = reg
	next.preg = true
	rebuild(&next, old)
	publish(&next)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets and pins the global resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res = res
	next.pres = true
	publish(&next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds non-pinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	rebuild(&next, old)
	publish(&next)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.ext = ext
	rebuild(&next, old)
	publish(&next)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next reconfiguration rebuild the registry again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.preg = false
	publish(&next)
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next reconfiguration rebuild the resolver again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.pres = false
	publish(&next)
}

// rebuild rebuilds the non-pinned layers of next with next's builder,
// migrating from old. Callers hold buildMu.
func rebuild(next, old *state) {
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, next.mux, old.res, next.ext)
	}
}

// publish validates s and stores it as the current snapshot.
// Callers hold buildMu.
func publish(s *state) {
	// Ensure non-nil reg and res.
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers copy it, change the copy, and swap it in.
// The registry and locator mux are shared, internally synchronized objects.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// mux routes apps to locators.
	mux *locator.Mux
	// preg indicates whether the reg is pinned.
	preg bool
	// pres indicates whether the res is pinned.
	pres bool
}

// sealOnResolve seals the registry when the config asks for write-once use.
func (s *state) sealOnResolve() {
	if s.cfg.SealOnResolve && !s.reg.Sealed() {
		s.reg.Seal()
	}
}
