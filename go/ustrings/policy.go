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

import "fmt"

// Unit is the set of code unit types produced by the conversions in this
// package: byte for UTF-8, uint16 for UTF-16, rune for UTF-32 and WChar for
// the wide encoding.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// DefaultReplacement is the replacement unit conventionally used with
// Substitute. It has the same value in every encoding.
const DefaultReplacement = '?'

// Policy decides what a conversion does when it meets an invalid sequence.
// U is the unit type of the conversion's target encoding.
//
// The zero value is the Fail policy.
type Policy[U Unit] struct {
	substitute  bool
	replacement U
}

// Substitute returns a policy that emits replacement once for every invalid
// sequence and resumes right after it. Conversions using it never fail
// because of their input.
func Substitute[U Unit](replacement U) Policy[U] {
	return Policy[U]{substitute: true, replacement: replacement}
}

// SubstituteDefault is Substitute(DefaultReplacement).
func SubstituteDefault[U Unit]() Policy[U] {
	return Substitute(U(DefaultReplacement))
}

// Fail returns a policy that aborts the conversion on the first invalid
// sequence with an *InvalidSequenceError.
func Fail[U Unit]() Policy[U] {
	return Policy[U]{}
}

// Substitutes reports whether p replaces invalid sequences.
func (p Policy[U]) Substitutes() bool {
	return p.substitute
}

// Replacement returns the replacement unit and whether p substitutes at all.
func (p Policy[U]) Replacement() (U, bool) {
	return p.replacement, p.substitute
}

func (p Policy[U]) String() string {
	if !p.substitute {
		return "fail"
	}
	return fmt.Sprintf("substitute(%#x)", uint32(p.replacement))
}

// invalid handles an invalid sequence of enc that starts at offset off of
// the source slice.
func (p Policy[U]) invalid(dst []U, enc Encoding, off int) ([]U, error) {
	if !p.substitute {
		return nil, &InvalidSequenceError{Encoding: enc, Offset: off}
	}
	return append(dst, p.replacement), nil
}

// retype carries p over to another unit type. The replacement value is
// converted as is.
func retype[T, U Unit](p Policy[U]) Policy[T] {
	return Policy[T]{substitute: p.substitute, replacement: T(p.replacement)}
}

// pivot returns the policy for the UTF-32 stage of a conversion that goes
// through UTF-32. Invalid sequences are marked with Invalid, which no
// encoder accepts, so the final stage applies p exactly once per invalid
// source sequence.
func pivot[U Unit](p Policy[U]) Policy[rune] {
	if p.substitute {
		return Substitute(Invalid)
	}
	return Fail[rune]()
}
