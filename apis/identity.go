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

// GlobalID is the read side of a global identifier. gid.ID implements it;
// resolvers accept the interface so they do not depend on the concrete type.
type GlobalID interface {
	// App returns the canonical (lowercase) application tag.
	App() string
	// ModelType returns the model type name, e.g. "Person::Child".
	ModelType() string
	// ModelID returns the model-local id as text.
	ModelID() string
}

// Identifiable is implemented by records that know their model-local id.
type Identifiable interface {
	ModelID() string
}

// Namer is implemented by records that know their model type name.
// Records that don't implement it need a model bound to their Go type.
type Namer interface {
	ModelName() string
}
