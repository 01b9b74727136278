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
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/gid/apis"
)

// Scheme is the URI scheme of every global identifier.
const Scheme = "gid"

// ID is a global identifier: an app tag, a model type name and a
// model-local id. IDs are immutable values; two IDs are equal (==) exactly
// when their canonical parts are. The zero ID names nothing.
type ID struct {
	app       string
	modelType string
	modelID   string
}

// Ensure ID implements apis.GlobalID.
var _ apis.GlobalID = ID{}

// New validates the parts and returns the identifier they form. app is
// canonicalized to lowercase; modelType and modelID are kept verbatim.
func New(app, modelType, modelID string) (ID, error) {
	input := app + "/" + modelType + "/" + modelID
	if !validApp(app) {
		return ID{}, parseError(InvalidAuthority, input, "app must match [a-zA-Z0-9_-]+")
	}
	if modelType == "" {
		return ID{}, parseError(InvalidPath, input, "model type is empty")
	}
	if modelID == "" {
		return ID{}, parseError(InvalidPath, input, "model id is empty")
	}
	return ID{app: strings.ToLower(app), modelType: modelType, modelID: modelID}, nil
}

// MustNew is like New but panics on error.
func MustNew(app, modelType, modelID string) ID {
	id, err := New(app, modelType, modelID)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse parses text of the form gid://<app>/<model-type>/<model-id>.
// Path segments are percent-decoded.
func Parse(text string) (ID, error) {
	scheme, rest, ok := strings.Cut(text, ":")
	if !ok || scheme != Scheme {
		return ID{}, parseError(InvalidScheme, text, "scheme must be "+Scheme)
	}

	rest, ok = strings.CutPrefix(rest, "//")
	if !ok {
		return ID{}, parseError(InvalidAuthority, text, "missing app")
	}

	app, path := rest, ""
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		app, path = rest[:i], rest[i:]
	}
	if !validApp(app) {
		return ID{}, parseError(InvalidAuthority, text, "app must match [a-zA-Z0-9_-]+")
	}

	if strings.ContainsAny(path, "?#") {
		return ID{}, parseError(InvalidPath, text, "query and fragment are not allowed")
	}
	if path == "" || path == "/" {
		return ID{}, parseError(InvalidPath, text, "missing model type and id")
	}

	segs := strings.Split(path[1:], "/")
	switch {
	case len(segs) == 1:
		// One segment short. When the host is shaped like a model type and the
		// lone segment is not, the app was left out (gid://Person/1) and the
		// type moved into its slot. Otherwise the path lacks a part.
		if modelTypeShaped(app) && !modelTypeShaped(segs[0]) {
			return ID{}, parseError(InvalidAuthority, text, "missing app")
		}
		return ID{}, parseError(InvalidPath, text, "expected /<model-type>/<model-id>")
	case len(segs) != 2 || segs[0] == "" || segs[1] == "":
		return ID{}, parseError(InvalidPath, text, "expected /<model-type>/<model-id>")
	}

	modelType, err := url.PathUnescape(segs[0])
	if err != nil {
		return ID{}, parseError(InvalidPath, text, "model type: "+err.Error())
	}
	modelID, err := url.PathUnescape(segs[1])
	if err != nil {
		return ID{}, parseError(InvalidPath, text, "model id: "+err.Error())
	}

	return New(app, modelType, modelID)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) ID {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// App returns the canonical (lowercase) application tag.
func (id ID) App() string { return id.app }

// ModelType returns the model type name, e.g. "Person::Child".
func (id ID) ModelType() string { return id.modelType }

// ModelID returns the model-local id as text.
func (id ID) ModelID() string { return id.modelID }

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool { return id == ID{} }

// String renders the identifier as gid://<app>/<model-type>/<model-id>.
// The zero ID renders as "".
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return Scheme + "://" + id.app + "/" + url.PathEscape(id.modelType) + "/" + url.PathEscape(id.modelID)
}

// URI returns the identifier as a freshly allocated *url.URL.
func (id ID) URI() *url.URL {
	if id.IsZero() {
		return &url.URL{}
	}
	return &url.URL{
		Scheme:  Scheme,
		Host:    id.app,
		Path:    "/" + id.modelType + "/" + id.modelID,
		RawPath: "/" + url.PathEscape(id.modelType) + "/" + url.PathEscape(id.modelID),
	}
}

// Int64 parses the model id as a decimal integer.
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(id.modelID, 10, 64)
}

// UUID parses the model id as a UUID.
func (id ID) UUID() (uuid.UUID, error) {
	return uuid.Parse(id.modelID)
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the zero ID.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Locate resolves id through the process-wide resolver. See Locate.
func (id ID) Locate(ctx context.Context, only ...apis.Descriptor) (any, error) {
	return Locate(ctx, id, only...)
}

// modelTypeShaped reports whether s starts like a model type name (A-Z).
func modelTypeShaped(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// validApp reports whether s matches [a-zA-Z0-9_-]+.
func validApp(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
