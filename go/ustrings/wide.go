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
	"strconv"
	"strings"

	"vitess.io/ustrings/go/hack"
)

// WChar is a code unit of the wide encoding. With a 16-bit wide width every
// unit holds a UTF-16 code unit; with a 32-bit width it holds a code point.
type WChar uint32

// WideWidth is the code unit width of the wide encoding.
type WideWidth int

const (
	// WideUnsupported is any width other than 16 or 32 bits.
	WideUnsupported WideWidth = iota
	// Wide16 is a UTF-16 compatible wide encoding.
	Wide16
	// Wide32 is a UTF-32 compatible wide encoding.
	Wide32
)

// WideWidthFromBits maps a unit size in bits to a WideWidth.
func WideWidthFromBits(bits int) WideWidth {
	switch bits {
	case 16:
		return Wide16
	case 32:
		return Wide32
	default:
		return WideUnsupported
	}
}

// ParseWideWidth parses "native", "16" or "32". Any other number of bits
// parses to WideUnsupported; anything that is not a number is an error.
func ParseWideWidth(s string) (WideWidth, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "native" {
		return NativeWideWidth, nil
	}
	bits, err := strconv.Atoi(strings.TrimSuffix(s, "bit"))
	if err != nil {
		return WideUnsupported, fmt.Errorf("invalid wide width %q: expected native, 16 or 32", s)
	}
	return WideWidthFromBits(bits), nil
}

// Bits returns 16 or 32, or 0 for WideUnsupported.
func (w WideWidth) Bits() int {
	switch w {
	case Wide16:
		return 16
	case Wide32:
		return 32
	default:
		return 0
	}
}

func (w WideWidth) String() string {
	switch w {
	case Wide16:
		return "wide16"
	case Wide32:
		return "wide32"
	default:
		return "unsupported"
	}
}

// WideCodec converts between the wide encoding of a given width and the
// UTF encodings. The zero value, like a codec for any width other than
// Wide16 or Wide32, fails every conversion with ErrUnsupportedWideWidth.
type WideCodec struct {
	width WideWidth
	impl  wideStrategy
}

type wideStrategy interface {
	fromUTF32(src []rune, p Policy[WChar]) ([]WChar, error)
	toUTF32(src []WChar, p Policy[rune]) ([]rune, error)
	fromUTF16(src []uint16, p Policy[WChar]) ([]WChar, error)
	toUTF16(src []WChar, p Policy[uint16]) ([]uint16, error)
	fromUTF8(src []byte, p Policy[WChar]) ([]WChar, error)
	toUTF8(src []WChar, p Policy[byte]) ([]byte, error)
}

// NewWideCodec returns the codec for w.
func NewWideCodec(w WideWidth) WideCodec {
	switch w {
	case Wide16:
		return WideCodec{width: w, impl: wide16{}}
	case Wide32:
		return WideCodec{width: w, impl: wide32{}}
	default:
		return WideCodec{width: WideUnsupported, impl: wideUnsupported{}}
	}
}

// NativeWide returns the codec for NativeWideWidth.
func NativeWide() WideCodec {
	return NewWideCodec(NativeWideWidth)
}

// Width returns the width the codec was built for.
func (c WideCodec) Width() WideWidth {
	return c.width
}

func (c WideCodec) strategy() wideStrategy {
	if c.impl == nil {
		return wideUnsupported{}
	}
	return c.impl
}

// FromUTF32 converts UTF-32 to wide units.
func (c WideCodec) FromUTF32(src []rune, p Policy[WChar]) ([]WChar, error) {
	return c.strategy().fromUTF32(src, p)
}

// ToUTF32 converts wide units to UTF-32.
func (c WideCodec) ToUTF32(src []WChar, p Policy[rune]) ([]rune, error) {
	return c.strategy().toUTF32(src, p)
}

// FromUTF16 converts UTF-16 to wide units.
func (c WideCodec) FromUTF16(src []uint16, p Policy[WChar]) ([]WChar, error) {
	return c.strategy().fromUTF16(src, p)
}

// ToUTF16 converts wide units to UTF-16.
func (c WideCodec) ToUTF16(src []WChar, p Policy[uint16]) ([]uint16, error) {
	return c.strategy().toUTF16(src, p)
}

// FromUTF8 converts UTF-8 to wide units.
func (c WideCodec) FromUTF8(src []byte, p Policy[WChar]) ([]WChar, error) {
	return c.strategy().fromUTF8(src, p)
}

// ToUTF8 converts wide units to UTF-8.
func (c WideCodec) ToUTF8(src []WChar, p Policy[byte]) ([]byte, error) {
	return c.strategy().toUTF8(src, p)
}

// UTF32ToWide converts src with the native wide codec.
func UTF32ToWide(src []rune, p Policy[WChar]) ([]WChar, error) {
	return NativeWide().FromUTF32(src, p)
}

// WideToUTF32 converts src with the native wide codec.
func WideToUTF32(src []WChar, p Policy[rune]) ([]rune, error) {
	return NativeWide().ToUTF32(src, p)
}

// UTF16ToWide converts src with the native wide codec.
func UTF16ToWide(src []uint16, p Policy[WChar]) ([]WChar, error) {
	return NativeWide().FromUTF16(src, p)
}

// WideToUTF16 converts src with the native wide codec.
func WideToUTF16(src []WChar, p Policy[uint16]) ([]uint16, error) {
	return NativeWide().ToUTF16(src, p)
}

// UTF8ToWide converts src with the native wide codec.
func UTF8ToWide(src []byte, p Policy[WChar]) ([]WChar, error) {
	return NativeWide().FromUTF8(src, p)
}

// WideToUTF8 converts src with the native wide codec.
func WideToUTF8(src []WChar, p Policy[byte]) ([]byte, error) {
	return NativeWide().ToUTF8(src, p)
}

// wide16 holds UTF-16 in 32-bit units and delegates to the UTF-16 codec.
type wide16 struct{}

func (wide16) fromUTF32(src []rune, p Policy[WChar]) ([]WChar, error) {
	return encodeUTF16Seq(src, p)
}

func (wide16) toUTF32(src []WChar, p Policy[rune]) ([]rune, error) {
	return decodeUTF16Seq(src, Wide, p)
}

// fromUTF16 widens every unit. Like the 32-bit passthrough, no validation
// happens when the unit sequence is kept as is.
func (wide16) fromUTF16(src []uint16, _ Policy[WChar]) ([]WChar, error) {
	dst := make([]WChar, len(src))
	for i, u := range src {
		dst[i] = WChar(u)
	}
	return dst, nil
}

// toUTF16 narrows every unit. Units that do not fit in 16 bits are invalid.
func (wide16) toUTF16(src []WChar, p Policy[uint16]) ([]uint16, error) {
	var err error
	dst := make([]uint16, 0, len(src))
	for i, u := range src {
		if u > maxBMP {
			if dst, err = p.invalid(dst, Wide, i); err != nil {
				return nil, err
			}
			continue
		}
		dst = append(dst, uint16(u))
	}
	return dst, nil
}

func (wide16) fromUTF8(src []byte, p Policy[WChar]) ([]WChar, error) {
	return viaUTF32(src, UTF8, p, UTF8ToUTF32, DecodeUTF8, encodeUTF16Seq[WChar])
}

func (wide16) toUTF8(src []WChar, p Policy[byte]) ([]byte, error) {
	decode := func(src []WChar, p Policy[rune]) ([]rune, error) {
		return decodeUTF16Seq(src, Wide, p)
	}
	return viaUTF32(src, Wide, p, decode, decodeUTF16[WChar], UTF32ToUTF8)
}

// wide32 units are code points. Converting between UTF-32 and wide units is
// a reinterpretation of the units and performs no validation.
type wide32 struct{}

func (wide32) fromUTF32(src []rune, _ Policy[WChar]) ([]WChar, error) {
	dst := make([]WChar, len(src))
	copy(dst, hack.CastSlice[WChar](src))
	return dst, nil
}

func (wide32) toUTF32(src []WChar, _ Policy[rune]) ([]rune, error) {
	dst := make([]rune, len(src))
	copy(dst, hack.CastSlice[rune](src))
	return dst, nil
}

func (wide32) fromUTF16(src []uint16, p Policy[WChar]) ([]WChar, error) {
	runes, err := UTF16ToUTF32(src, retype[rune](p))
	if err != nil {
		return nil, err
	}
	// runes is ours; no copy needed.
	return hack.CastSlice[WChar](runes), nil
}

func (wide32) toUTF16(src []WChar, p Policy[uint16]) ([]uint16, error) {
	dst, err := UTF32ToUTF16(hack.CastSlice[rune](src), p)
	if err != nil {
		return nil, relabel(err, Wide)
	}
	return dst, nil
}

func (wide32) fromUTF8(src []byte, p Policy[WChar]) ([]WChar, error) {
	runes, err := UTF8ToUTF32(src, retype[rune](p))
	if err != nil {
		return nil, err
	}
	return hack.CastSlice[WChar](runes), nil
}

func (wide32) toUTF8(src []WChar, p Policy[byte]) ([]byte, error) {
	dst, err := UTF32ToUTF8(hack.CastSlice[rune](src), p)
	if err != nil {
		return nil, relabel(err, Wide)
	}
	return dst, nil
}

type wideUnsupported struct{}

func (wideUnsupported) fromUTF32([]rune, Policy[WChar]) ([]WChar, error) {
	return nil, ErrUnsupportedWideWidth
}

func (wideUnsupported) toUTF32([]WChar, Policy[rune]) ([]rune, error) {
	return nil, ErrUnsupportedWideWidth
}

func (wideUnsupported) fromUTF16([]uint16, Policy[WChar]) ([]WChar, error) {
	return nil, ErrUnsupportedWideWidth
}

func (wideUnsupported) toUTF16([]WChar, Policy[uint16]) ([]uint16, error) {
	return nil, ErrUnsupportedWideWidth
}

func (wideUnsupported) fromUTF8([]byte, Policy[WChar]) ([]WChar, error) {
	return nil, ErrUnsupportedWideWidth
}

func (wideUnsupported) toUTF8([]WChar, Policy[byte]) ([]byte, error) {
	return nil, ErrUnsupportedWideWidth
}
