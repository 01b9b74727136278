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

// Package gid provides global identifiers for records: compact URIs that
// name one record instance across a distributed application, and a
// process-wide service that resolves them back to records.
//
// # Identifiers
//
// An identifier has three parts, an application tag, a model type name and
// a model-local id, and one text form:
//
//	gid://<app>/<model-type>/<model-id>
//
// For example "gid://bcx/Person/5" or "gid://bcx/Person::Child/4". The app
// tag must match [a-zA-Z0-9_-]+ and is canonicalized to lowercase. The model
// type is an opaque name; "::" namespacing is kept verbatim and never splits
// the path. The model id is opaque text (a number, a UUID, ...). Both are
// percent-encoded on output and decoded on input, so
//
//	Parse(id.String()) == id
//
// holds for every valid ID. IDs are comparable values and can be used as map
// keys directly.
//
// # Models and capabilities
//
// Resolution is driven by model descriptors (apis.Model) held in a type
// registry. A model has a name, at most one parent, and a statically declared
// capability set (apis.Capability) that includes the capabilities of its
// ancestors:
//
//	identification := apis.NewCapability("Identification")
//	person := apis.NewModel("Person", apis.Implements(identification))
//	child := apis.NewModel("Person::Child", apis.Extends(person))
//	_ = gid.Register(person, child)
//
// # Resolution
//
// Locate looks up the model named by the identifier, checks an optional
// constraint and fetches the record through the locator registered for the
// identifier's app (or the default locator):
//
//	gid.SetDefaultLocator(store)
//	rec, err := gid.Locate(ctx, id)                    // any model
//	rec, err = gid.Locate(ctx, id, person)             // Person or a subtype
//	rec, err = gid.Locate(ctx, id, identification)     // anything declaring it
//	rec, err = gid.Locate(ctx, id, hash, person)       // either one
//
// A model matches a descriptor when the descriptor is the model itself, one
// of its ancestors, or one of its declared capabilities. Nothing else ever
// matches. A mismatch is not an error: Locate returns (nil, nil). An
// identifier whose model type is not registered is an error
// (apis.ErrUnknownModelType). Missing records resolve to nil unless the
// config turns IgnoreMissing off.
//
// # Global state
//
// The configuration, registry, resolver, builder and locator routes live in
// one immutable snapshot swapped atomically, so reads are lock-free. The
// registry is meant to be filled at startup and then sealed; by default the
// first resolution seals it, after which Register fails with
// registry.ErrSealed. Tests use SetAll to start from a clean snapshot.
package gid
