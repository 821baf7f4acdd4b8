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

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000

	maxBMP = 0xffff
)

// unit16 is a slice element able to carry a UTF-16 code unit. Wide slices
// use 32-bit units even when they hold UTF-16.
type unit16 interface {
	~uint16 | ~uint32
}

// IsHighSurrogate reports whether u is a high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return surr1 <= u && u < surr2
}

// IsLowSurrogate reports whether u is a low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return surr2 <= u && u < surr3
}

// IsSurrogate reports whether r lies in the range reserved for surrogates.
// Such values are never valid code points on their own.
func IsSurrogate(r rune) bool {
	return surr1 <= r && r < surr3
}

// NeedsSurrogatePair reports whether r is encoded as a surrogate pair in
// UTF-16.
func NeedsSurrogatePair(r rune) bool {
	return surrSelf <= r && r <= MaxRune
}

// EncodeSurrogatePair returns the surrogate pair for r. It returns 0, 0 if
// r does not need a pair.
func EncodeSurrogatePair(r rune) (hi, lo uint16) {
	if !NeedsSurrogatePair(r) {
		return 0, 0
	}
	r -= surrSelf
	return uint16(surr1 + (r>>10)&0x3ff), uint16(surr2 + r&0x3ff)
}

// DecodeSurrogatePair returns the code point encoded by the pair hi, lo, or
// Invalid if they do not form a pair.
func DecodeSurrogatePair(hi, lo uint16) rune {
	if !IsHighSurrogate(hi) || !IsLowSurrogate(lo) {
		return Invalid
	}
	return surrSelf + (rune(hi)&0x3ff)<<10 + rune(lo)&0x3ff
}

// UTF16Len returns the number of UTF-16 units needed to encode r: 1 or 2,
// or 0 when r is out of range or in the surrogate range.
func UTF16Len(r rune) int {
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return 1
	case NeedsSurrogatePair(r):
		return 2
	default:
		return 0
	}
}

// EncodeUTF16 writes the UTF-16 encoding of r into p and returns the number
// of units written. p must be large enough to hold UTF16Len(r) units. It
// returns 0 when r cannot be encoded.
func EncodeUTF16(p []uint16, r rune) int {
	switch UTF16Len(r) {
	case 1:
		p[0] = uint16(r)
		return 1
	case 2:
		_ = p[1] // eliminate bounds checks
		p[0], p[1] = EncodeSurrogatePair(r)
		return 2
	default:
		return 0
	}
}

// AppendUTF16 appends the UTF-16 encoding of r to p and returns the extended
// slice along with the number of units appended, which is 0 when r cannot be
// encoded.
func AppendUTF16(p []uint16, r rune) ([]uint16, int) {
	return appendUTF16(p, r)
}

func appendUTF16[U unit16](p []U, r rune) ([]U, int) {
	switch UTF16Len(r) {
	case 1:
		return append(p, U(r)), 1
	case 2:
		hi, lo := EncodeSurrogatePair(r)
		return append(p, U(hi), U(lo)), 2
	default:
		return p, 0
	}
}

// DecodeUTF16 decodes the UTF-16 sequence at the start of p and returns the
// code point along with the number of units it consumed.
//
// A high surrogate followed by a low surrogate decodes to one code point. A
// high surrogate followed by anything else is an invalid pair and both units
// are consumed; a high surrogate at the end of p, or a low surrogate with no
// high surrogate before it, is invalid on its own. Invalid sequences return
// Invalid.
//
// The size is 0 only when p is empty.
func DecodeUTF16(p []uint16) (r rune, size int) {
	return decodeUTF16(p)
}

func decodeUTF16[U unit16](p []U) (rune, int) {
	if len(p) < 1 {
		return Invalid, 0
	}
	r1 := uint32(p[0])
	switch {
	case r1 > maxBMP:
		// Only possible for wide units.
		return Invalid, 1
	case r1 < surr1 || surr3 <= r1:
		return rune(r1), 1
	case surr2 <= r1:
		return Invalid, 1
	case len(p) < 2:
		return Invalid, 1
	}
	r2 := uint32(p[1])
	if r2 < surr2 || surr3 <= r2 {
		return Invalid, 2
	}
	return (rune(r1)-surr1)<<10 | (rune(r2) - surr2) + surrSelf, 2
}

// ValidUTF16 reports whether src decodes without a single invalid sequence.
func ValidUTF16(src []uint16) bool {
	for i := 0; i < len(src); {
		r, size := DecodeUTF16(src[i:])
		if r == Invalid {
			return false
		}
		i += size
	}
	return true
}

// UTF16ToUTF32 decodes the whole of src.
func UTF16ToUTF32(src []uint16, p Policy[rune]) ([]rune, error) {
	return decodeUTF16Seq(src, UTF16, p)
}

// UTF32ToUTF16 encodes every code point of src. Surrogate code points and
// values outside [0, MaxRune] are invalid.
func UTF32ToUTF16(src []rune, p Policy[uint16]) ([]uint16, error) {
	return encodeUTF16Seq(src, p)
}

func decodeUTF16Seq[U unit16](src []U, enc Encoding, p Policy[rune]) ([]rune, error) {
	var err error
	dst := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size := decodeUTF16(src[i:])
		if r == Invalid {
			if dst, err = p.invalid(dst, enc, i); err != nil {
				return nil, err
			}
		} else {
			dst = append(dst, r)
		}
		i += size
	}
	return dst, nil
}

func encodeUTF16Seq[U unit16](src []rune, p Policy[U]) ([]U, error) {
	var (
		n   int
		err error
	)
	dst := make([]U, 0, len(src))
	for i, r := range src {
		if dst, n = appendUTF16(dst, r); n == 0 {
			if dst, err = p.invalid(dst, UTF32, i); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}
