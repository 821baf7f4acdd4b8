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

import "errors"

// UTF8ToUTF16 converts src to UTF-16 by way of UTF-32.
func UTF8ToUTF16(src []byte, p Policy[uint16]) ([]uint16, error) {
	return viaUTF32(src, UTF8, p, UTF8ToUTF32, DecodeUTF8, UTF32ToUTF16)
}

// UTF16ToUTF8 converts src to UTF-8 by way of UTF-32.
func UTF16ToUTF8(src []uint16, p Policy[byte]) ([]byte, error) {
	return viaUTF32(src, UTF16, p, UTF16ToUTF32, DecodeUTF16, UTF32ToUTF8)
}

// viaUTF32 decodes src to UTF-32 and encodes the result. The decode stage
// marks invalid sequences with Invalid (see pivot) so the encode stage
// substitutes them with the target replacement. In fail mode an error from
// the encode stage indexes the UTF-32 slice; it is moved back to the offset
// of the matching unit in src.
func viaUTF32[S, T Unit](
	src []S,
	enc Encoding,
	p Policy[T],
	decode func([]S, Policy[rune]) ([]rune, error),
	next func([]S) (rune, int),
	encode func([]rune, Policy[T]) ([]T, error),
) ([]T, error) {
	runes, err := decode(src, pivot(p))
	if err != nil {
		return nil, err
	}
	dst, err := encode(runes, p)
	if err != nil {
		var ise *InvalidSequenceError
		if errors.As(err, &ise) {
			return nil, &InvalidSequenceError{Encoding: enc, Offset: unitOffset(src, ise.Offset, next)}
		}
		return nil, err
	}
	return dst, nil
}

// unitOffset returns the offset in src of the n-th decoded sequence.
func unitOffset[S Unit](src []S, n int, next func([]S) (rune, int)) int {
	off := 0
	for ; n > 0 && off < len(src); n-- {
		_, size := next(src[off:])
		off += size
	}
	return off
}
