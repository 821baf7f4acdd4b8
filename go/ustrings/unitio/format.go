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

package unitio

import (
	"bytes"
	"fmt"
	"strings"

	"vitess.io/ustrings/go/hack"
	"vitess.io/ustrings/go/ustrings"
)

// Format is a serialized encoding: an encoding form together with the byte
// order of its code units and, for the wide encoding, the codec that gives
// the unit width.
type Format struct {
	Encoding ustrings.Encoding
	Order    ByteOrder
	Wide     ustrings.WideCodec

	// pinned is set when the name the format was parsed from carries the
	// byte order.
	pinned bool
}

var formats = map[string]Format{
	"utf8":    {Encoding: ustrings.UTF8, pinned: true},
	"utf16":   {Encoding: ustrings.UTF16},
	"utf16le": {Encoding: ustrings.UTF16, Order: LittleEndian, pinned: true},
	"utf16be": {Encoding: ustrings.UTF16, Order: BigEndian, pinned: true},
	"utf32":   {Encoding: ustrings.UTF32},
	"utf32le": {Encoding: ustrings.UTF32, Order: LittleEndian, pinned: true},
	"utf32be": {Encoding: ustrings.UTF32, Order: BigEndian, pinned: true},
	"wide":    {Encoding: ustrings.Wide},
	"wchar":   {Encoding: ustrings.Wide},
}

// ParseFormat parses a format name such as "utf8", "UTF-16BE" or "wide".
// Names without an explicit byte order default to little endian and can be
// changed with WithOrder. The wide format uses the native wide codec.
func ParseFormat(name string) (Format, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	f, ok := formats[key]
	if !ok {
		return Format{}, fmt.Errorf("unknown format %q", name)
	}
	if f.Encoding == ustrings.Wide {
		f.Wide = ustrings.NativeWide()
	}
	return f, nil
}

// MustParseFormat is like ParseFormat but panics on error.
func MustParseFormat(name string) Format {
	f, err := ParseFormat(name)
	if err != nil {
		panic(err)
	}
	return f
}

// WithOrder returns f with byte order o, unless f's name fixed the order.
func (f Format) WithOrder(o ByteOrder) Format {
	if !f.pinned {
		f.Order = o
	}
	return f
}

// WithWide returns f using codec c for the wide encoding.
func (f Format) WithWide(c ustrings.WideCodec) Format {
	f.Wide = c
	return f
}

// UnitSize is the number of bytes of one serialized code unit, or 0 for a
// wide format with an unsupported width.
func (f Format) UnitSize() int {
	if f.Encoding == ustrings.Wide {
		return f.Wide.Width().Bits() / 8
	}
	return f.Encoding.UnitBits() / 8
}

func (f Format) String() string {
	switch f.Encoding {
	case ustrings.UTF8:
		return "UTF-8"
	case ustrings.Wide:
		return f.Wide.Width().String() + f.Order.String()
	}
	return f.Encoding.String() + f.Order.String()
}

// Extension is the file name extension used for output in format f.
func (f Format) Extension() string {
	return strings.ToLower(strings.ReplaceAll(f.String(), "-", ""))
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// BOM returns the byte order mark of f, or nil when f has none.
func BOM(f Format) []byte {
	bits := f.Encoding.UnitBits()
	if f.Encoding == ustrings.Wide {
		bits = f.Wide.Width().Bits()
	}
	switch {
	case bits == 8:
		return bytes.Clone(bomUTF8)
	case bits == 16 && f.Order == BigEndian:
		return bytes.Clone(bomUTF16BE)
	case bits == 16:
		return bytes.Clone(bomUTF16LE)
	case bits == 32 && f.Order == BigEndian:
		return bytes.Clone(bomUTF32BE)
	case bits == 32:
		return bytes.Clone(bomUTF32LE)
	}
	return nil
}

// DetectBOM looks for a byte order mark at the start of b and returns the
// format it announces and its length.
func DetectBOM(b []byte) (Format, int, bool) {
	switch {
	case bytes.HasPrefix(b, bomUTF32LE):
		return formats["utf32le"], len(bomUTF32LE), true
	case bytes.HasPrefix(b, bomUTF32BE):
		return formats["utf32be"], len(bomUTF32BE), true
	case bytes.HasPrefix(b, bomUTF8):
		return formats["utf8"], len(bomUTF8), true
	case bytes.HasPrefix(b, bomUTF16LE):
		return formats["utf16le"], len(bomUTF16LE), true
	case bytes.HasPrefix(b, bomUTF16BE):
		return formats["utf16be"], len(bomUTF16BE), true
	}
	return Format{}, 0, false
}

// Decode unpacks b into the code unit slice of format f. The result is a
// []byte, []uint16, []rune or []ustrings.WChar.
func Decode(b []byte, f Format) (any, error) {
	switch f.Encoding {
	case ustrings.UTF8:
		return b, nil
	case ustrings.UTF16:
		return Unpack16(b, f.Order)
	case ustrings.UTF32:
		u, err := Unpack32(b, f.Order)
		return hack.CastSlice[rune](u), err
	case ustrings.Wide:
		switch f.Wide.Width() {
		case ustrings.Wide16:
			u, err := Unpack16(b, f.Order)
			if err != nil {
				return nil, err
			}
			w := make([]ustrings.WChar, len(u))
			for i, c := range u {
				w[i] = ustrings.WChar(c)
			}
			return w, nil
		case ustrings.Wide32:
			u, err := Unpack32(b, f.Order)
			return hack.CastSlice[ustrings.WChar](u), err
		}
		return nil, ustrings.ErrUnsupportedWideWidth
	}
	return nil, fmt.Errorf("unknown encoding %v", f.Encoding)
}

// Encode serializes a []byte, []uint16, []rune or []ustrings.WChar in
// format f. Other types yield nil.
func Encode(units any, f Format) []byte {
	switch u := units.(type) {
	case []byte:
		return u
	case []uint16:
		return Pack16(u, f.Order)
	case []rune:
		return Pack32(hack.CastSlice[uint32](u), f.Order)
	case []ustrings.WChar:
		if f.Wide.Width() == ustrings.Wide16 {
			n := make([]uint16, len(u))
			for i, c := range u {
				n[i] = uint16(c)
			}
			return Pack16(n, f.Order)
		}
		return Pack32(hack.CastSlice[uint32](u), f.Order)
	}
	return nil
}
