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
	"errors"
	"fmt"
)

var (
	// ErrInvalid matches every ParseError, whatever its kind.
	ErrInvalid = errors.New("gid: invalid global id")
	// ErrInvalidScheme is matched by ParseErrors of kind InvalidScheme.
	ErrInvalidScheme = errors.New("gid: invalid scheme")
	// ErrInvalidAuthority is matched by ParseErrors of kind InvalidAuthority.
	ErrInvalidAuthority = errors.New("gid: invalid app")
	// ErrInvalidPath is matched by ParseErrors of kind InvalidPath.
	ErrInvalidPath = errors.New("gid: invalid path")

	// ErrNotIdentifiable is returned by Create for records without a model id.
	ErrNotIdentifiable = errors.New("gid: record does not implement apis.Identifiable")
	// ErrUnknownRecordType is returned by Create when no model name can be found
	// for a record: it neither implements apis.Namer nor has a bound model.
	ErrUnknownRecordType = errors.New("gid: no model bound to record type")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

const (
	// InvalidScheme: the scheme is not exactly "gid".
	InvalidScheme ParseErrorKind = iota + 1
	// InvalidAuthority: the app token is missing or malformed.
	InvalidAuthority
	// InvalidPath: the path is not exactly /<model-type>/<model-id>.
	InvalidPath
)

// String returns the kind's name.
func (k ParseErrorKind) String() string {
	switch k {
	case InvalidScheme:
		return "InvalidScheme"
	case InvalidAuthority:
		return "InvalidAuthority"
	case InvalidPath:
		return "InvalidPath"
	default:
		return "Unknown"
	}
}

// ParseError is returned by Parse and New for structurally invalid input.
type ParseError struct {
	Kind ParseErrorKind
	// Input is the text (or rendered parts) being parsed.
	Input string
	// Reason is a short human-readable detail.
	Reason string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q: %s", e.sentinel(), e.Input, e.Reason)
}

// Unwrap exposes the kind's sentinel and ErrInvalid to errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{e.sentinel(), ErrInvalid}
}

func (e *ParseError) sentinel() error {
	switch e.Kind {
	case InvalidScheme:
		return ErrInvalidScheme
	case InvalidAuthority:
		return ErrInvalidAuthority
	case InvalidPath:
		return ErrInvalidPath
	default:
		return ErrInvalid
	}
}

func parseError(kind ParseErrorKind, input, reason string) error {
	return &ParseError{Kind: kind, Input: input, Reason: reason}
}
