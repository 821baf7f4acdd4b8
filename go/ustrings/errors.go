/*
Copyright 2026 The Vitess Authors.

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

package ustrings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSequence matches every *InvalidSequenceError with errors.Is.
	ErrInvalidSequence = errors.New("invalid sequence")

	// ErrUnsupportedWideWidth is returned by every conversion of a WideCodec
	// whose width is neither 16 nor 32 bits. It is a configuration error and
	// is returned regardless of the input or the Policy.
	ErrUnsupportedWideWidth = errors.New("unsupported wide character width")
)

// InvalidSequenceError reports the first invalid sequence found by a
// conversion running with a Fail policy.
type InvalidSequenceError struct {
	// Encoding is the encoding of the source slice.
	Encoding Encoding
	// Offset is the index of the first unit of the invalid sequence in the
	// source slice.
	Offset int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid %s sequence at offset %d", e.Encoding, e.Offset)
}

// Is lets errors.Is(err, ErrInvalidSequence) succeed.
func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// relabel rewrites the encoding of an *InvalidSequenceError. It is used when
// a conversion delegates to another one over a reinterpreted slice, so the
// offsets are unchanged but the source encoding is not the delegate's.
func relabel(err error, enc Encoding) error {
	var ise *InvalidSequenceError
	if errors.As(err, &ise) {
		return &InvalidSequenceError{Encoding: enc, Offset: ise.Offset}
	}
	return err
}
