/**
 * Copyright 2016 hll authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http: *www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

package hll

import "github.com/pkg/errors"

// Kind categorizes the ways an operation on a Multiset can fail. It mirrors
// the error taxonomy of the storage spec rather than being a Go error type
// hierarchy: callers that care about the failure mode should switch on Kind,
// not on the concrete error value.
type Kind int

const (
	// Internal indicates an impossible type tag was observed; it signals a
	// bug in this package rather than bad caller input.
	Internal Kind = iota
	// BadParameter indicates an invalid log2m, regwidth, expthresh, or
	// sparseon at construction time.
	BadParameter
	// BadEncoding indicates an unknown version, unknown type, inconsistent
	// length, non-ascending or duplicate EXPLICIT entries, or excessive
	// padding while decoding a wire representation.
	BadEncoding
	// Incompatible indicates a union was attempted between two Multisets
	// whose nbits/nregs/expthresh/sparseon settings don't match, or between
	// two COMPRESSED Multisets of different register counts.
	Incompatible
	// BadSize indicates a payload would exceed MS_MAXDATA, or that
	// Cardinality was asked to estimate over too few registers.
	BadSize
	// BadHashSeed indicates a negative seed was passed to the hash wrapper.
	BadHashSeed
)

func (k Kind) String() string {
	switch k {
	case BadParameter:
		return "BadParameter"
	case BadEncoding:
		return "BadEncoding"
	case Incompatible:
		return "Incompatible"
	case BadSize:
		return "BadSize"
	case BadHashSeed:
		return "BadHashSeed"
	default:
		return "Internal"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package. It carries a Kind so callers can branch on failure category
// without string matching, and wraps an underlying cause for diagnostics.
type Error struct {
	kind  Kind
	cause error
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, cause: errors.New(msg)}
}

func wrapError(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// Kind reports the category of failure.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Sentinel errors for common failure modes that callers frequently check
// with errors.Is. Each also carries the matching Kind and can be inspected
// with errors.As into *Error.
var (
	// ErrInsufficientBytes is returned by Unpack when the supplied byte
	// slice is shorter than the 3-byte header. A payload whose length does
	// not match its header is reported as a BadEncoding *Error instead.
	ErrInsufficientBytes = wrapError(BadEncoding, errors.New("hll: insufficient bytes to deserialize Multiset"))

	// ErrIncompatible is returned by Union when the two Multisets have
	// different nbits/nregs/expthresh/sparseon settings and cannot be
	// combined.
	ErrIncompatible = wrapError(Incompatible, errors.New("hll: cannot union Multisets with incompatible settings"))
)
