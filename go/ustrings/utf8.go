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

// UTFMax is the maximum number of bytes of a UTF-8 encoded code point.
const UTFMax = 4

const (
	t1 = 0b00000000
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000
	t5 = 0b11111000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// leadMask holds the payload mask of a lead byte, indexed by sequence length.
var leadMask = [UTFMax + 1]byte{0, 0xFF, mask2, mask3, mask4}

// SequenceLength returns the total length of the UTF-8 sequence announced by
// the lead byte b: 1 for 0xxxxxxx, 2 for 110xxxxx, 3 for 1110xxxx and 4 for
// 11110xxx. Continuation bytes and 11111xxx are not lead bytes and have
// length 0.
func SequenceLength(b byte) int {
	switch {
	case b&0b10000000 == t1:
		return 1
	case b&0b11100000 == t2:
		return 2
	case b&0b11110000 == t3:
		return 3
	case b&t5 == t4:
		return 4
	default:
		return 0
	}
}

// IsContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(b byte) bool {
	return b&0b11000000 == tx
}

// UTF8Len returns the number of bytes needed to encode r, or 0 if r is
// negative or above MaxRune.
func UTF8Len(r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		return 1
	case i <= rune2Max:
		return 2
	case i <= rune3Max:
		return 3
	case i <= MaxRune:
		return 4
	default:
		return 0
	}
}

// EncodeUTF8 writes the UTF-8 encoding of r into p and returns the number of
// bytes written. p must be large enough to hold UTF8Len(r) bytes. It returns
// 0 and leaves p untouched when r is out of range; that check does not
// depend on any Policy.
//
// Code points in the surrogate range are encoded like any other three byte
// sequence.
func EncodeUTF8(p []byte, r rune) int {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	switch i := uint32(r); {
	case i <= rune1Max:
		p[0] = byte(r)
		return 1
	case i <= rune2Max:
		_ = p[1] // eliminate bounds checks
		p[0] = t2 | byte(r>>6)
		p[1] = tx | byte(r)&maskx
		return 2
	case i <= rune3Max:
		_ = p[2] // eliminate bounds checks
		p[0] = t3 | byte(r>>12)
		p[1] = tx | byte(r>>6)&maskx
		p[2] = tx | byte(r)&maskx
		return 3
	case i <= MaxRune:
		_ = p[3] // eliminate bounds checks
		p[0] = t4 | byte(r>>18)
		p[1] = tx | byte(r>>12)&maskx
		p[2] = tx | byte(r>>6)&maskx
		p[3] = tx | byte(r)&maskx
		return 4
	default:
		return 0
	}
}

// AppendUTF8 appends the UTF-8 encoding of r to p and returns the extended
// slice along with the number of bytes appended, which is 0 when r is out of
// range.
func AppendUTF8(p []byte, r rune) ([]byte, int) {
	var buf [UTFMax]byte
	n := EncodeUTF8(buf[:], r)
	return append(p, buf[:n]...), n
}

// DecodeUTF8 decodes the UTF-8 sequence at the start of p and returns the
// code point along with the number of bytes it consumed.
//
// When the sequence is malformed it returns Invalid. The consumed size then
// tells the caller where to resume:
//   - a byte that is not a lead byte consumes 1 byte;
//   - a sequence cut short by the end of p consumes the rest of p;
//   - a sequence whose continuation bytes are wrong, or that decodes to a
//     value above MaxRune, consumes its full announced length.
//
// Decoding never backtracks into a rejected sequence. Only continuation
// bytes are validated: overlong forms and surrogate code points decode to
// their value.
//
// The size is 0 only when p is empty.
func DecodeUTF8(p []byte) (r rune, size int) {
	n := len(p)
	if n < 1 {
		return Invalid, 0
	}
	p0 := p[0]
	sz := SequenceLength(p0)
	switch {
	case sz == 0:
		return Invalid, 1
	case sz == 1:
		return rune(p0), 1
	case n < sz:
		return Invalid, n
	}
	r = rune(p0 & leadMask[sz])
	for _, b := range p[1:sz] {
		if !IsContinuation(b) {
			return Invalid, sz
		}
		r = r<<6 | rune(b&maskx)
	}
	if r > MaxRune {
		return Invalid, sz
	}
	return r, sz
}

// ValidUTF8 reports whether src decodes without a single invalid sequence.
func ValidUTF8(src []byte) bool {
	for i := 0; i < len(src); {
		r, size := DecodeUTF8(src[i:])
		if r == Invalid {
			return false
		}
		i += size
	}
	return true
}

// RuneCountUTF8 returns the number of code points and invalid sequences in
// src, which is the length of UTF8ToUTF32(src, Substitute(...)).
func RuneCountUTF8(src []byte) int {
	var n int
	for i := 0; i < len(src); n++ {
		_, size := DecodeUTF8(src[i:])
		i += size
	}
	return n
}

// UTF8ToUTF32 decodes the whole of src.
func UTF8ToUTF32(src []byte, p Policy[rune]) ([]rune, error) {
	var err error
	dst := make([]rune, 0, RuneCountUTF8(src))
	for i := 0; i < len(src); {
		r, size := DecodeUTF8(src[i:])
		if r == Invalid {
			if dst, err = p.invalid(dst, UTF8, i); err != nil {
				return nil, err
			}
		} else {
			dst = append(dst, r)
		}
		i += size
	}
	return dst, nil
}

// UTF32ToUTF8 encodes every code point of src. Code points above MaxRune,
// and negative ones, are invalid; the replacement byte of p is emitted as is.
func UTF32ToUTF8(src []rune, p Policy[byte]) ([]byte, error) {
	var (
		n   int
		err error
	)
	dst := make([]byte, 0, len(src))
	for i, r := range src {
		if dst, n = AppendUTF8(dst, r); n == 0 {
			if dst, err = p.invalid(dst, UTF32, i); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}
