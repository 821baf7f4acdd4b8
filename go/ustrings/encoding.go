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
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Encoding -linecomment

// Encoding identifies the encoding of a code unit sequence.
type Encoding int8

const (
	UTF8  Encoding = iota // UTF-8
	UTF16                 // UTF-16
	UTF32                 // UTF-32
	Wide                  // wide
)

const (
	// MaxRune is the largest Unicode code point.
	MaxRune = 0x10FFFF

	// Invalid is returned by the single sequence decoders in place of a
	// code point when the sequence is malformed. It is never a valid code
	// point in any encoding.
	Invalid rune = -1
)

// UnitBits returns the width in bits of a single code unit of e. The width
// of Wide depends on the codec in use, so it reports 0.
func (e Encoding) UnitBits() int {
	switch e {
	case UTF8:
		return 8
	case UTF16:
		return 16
	case UTF32:
		return 32
	default:
		return 0
	}
}

// ParseEncoding parses the name of an encoding. Names are case insensitive
// and the dash is optional, so "utf8", "UTF-8" and "Utf8" are all UTF8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "") {
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	case "utf32":
		return UTF32, nil
	case "wide", "wchar":
		return Wide, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}
