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
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurrogatePredicates(t *testing.T) {
	assert.False(t, IsHighSurrogate(0xD7FF))
	assert.True(t, IsHighSurrogate(0xD800))
	assert.True(t, IsHighSurrogate(0xDBFF))
	assert.False(t, IsHighSurrogate(0xDC00))

	assert.False(t, IsLowSurrogate(0xDBFF))
	assert.True(t, IsLowSurrogate(0xDC00))
	assert.True(t, IsLowSurrogate(0xDFFF))
	assert.False(t, IsLowSurrogate(0xE000))

	assert.True(t, IsSurrogate(0xD800))
	assert.True(t, IsSurrogate(0xDFFF))
	assert.False(t, IsSurrogate(0xE000))
	assert.False(t, IsSurrogate(-1))

	assert.False(t, NeedsSurrogatePair(0xFFFF))
	assert.True(t, NeedsSurrogatePair(0x10000))
	assert.True(t, NeedsSurrogatePair(MaxRune))
	assert.False(t, NeedsSurrogatePair(MaxRune+1))
}

func TestSurrogatePair(t *testing.T) {
	hi, lo := EncodeSurrogatePair(0x1F600)
	assert.Equal(t, uint16(0xD83D), hi)
	assert.Equal(t, uint16(0xDE00), lo)
	assert.Equal(t, rune(0x1F600), DecodeSurrogatePair(hi, lo))

	hi, lo = EncodeSurrogatePair('a')
	assert.Zero(t, hi)
	assert.Zero(t, lo)

	assert.Equal(t, Invalid, DecodeSurrogatePair(0xDC00, 0xD800))
	assert.Equal(t, Invalid, DecodeSurrogatePair(0xD800, 'a'))
}

func TestEncodeUTF16(t *testing.T) {
	testCases := []struct {
		r    rune
		want []uint16
	}{
		{'A', []uint16{0x41}},
		{0xD7FF, []uint16{0xD7FF}},
		{0xE000, []uint16{0xE000}},
		{0xFFFF, []uint16{0xFFFF}},
		{0x10000, []uint16{0xD800, 0xDC00}},
		{0x1F600, []uint16{0xD83D, 0xDE00}},
		{MaxRune, []uint16{0xDBFF, 0xDFFF}},
		{0xD800, []uint16{}},
		{0xDFFF, []uint16{}},
		{MaxRune + 1, []uint16{}},
		{-1, []uint16{}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%U", tc.r), func(t *testing.T) {
			var buf [2]uint16
			n := EncodeUTF16(buf[:], tc.r)
			assert.Equal(t, tc.want, buf[:n])
			assert.Equal(t, len(tc.want), UTF16Len(tc.r))

			got, n := AppendUTF16([]uint16{}, tc.r)
			assert.Equal(t, len(tc.want), n)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint16
		want rune
		size int
	}{
		{"empty", nil, Invalid, 0},
		{"bmp", []uint16{'A', 'B'}, 'A', 1},
		{"pair", []uint16{0xD83D, 0xDE00}, 0x1F600, 2},
		{"lone high", []uint16{0xD800}, Invalid, 1},
		{"orphan low", []uint16{0xDC00, 'A'}, Invalid, 1},
		{"high then bmp", []uint16{0xD800, 'A'}, Invalid, 2},
		{"high then high", []uint16{0xD800, 0xD800, 0xDC00}, Invalid, 2},
		{"max", []uint16{0xDBFF, 0xDFFF}, MaxRune, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, size := DecodeUTF16(tc.in)
			assert.Equal(t, tc.want, r)
			assert.Equal(t, tc.size, size)
		})
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	var runes []rune
	for r := rune(0); r <= MaxRune; r++ {
		if !IsSurrogate(r) {
			runes = append(runes, r)
		}
	}

	u16, err := UTF32ToUTF16(runes, Fail[uint16]())
	require.NoError(t, err)
	require.Equal(t, utf16.Encode(runes), u16)

	back, err := UTF16ToUTF32(u16, Fail[rune]())
	require.NoError(t, err)
	require.Equal(t, runes, back)
}

func TestUTF16ToUTF32(t *testing.T) {
	testCases := []struct {
		name   string
		in     []uint16
		want   []rune
		offset int
	}{
		{
			name: "valid",
			in:   utf16.Encode([]rune("héllo 😀")),
			want: []rune("héllo 😀"),
		},
		{
			name:   "lone high surrogate",
			in:     []uint16{0xD800},
			want:   []rune{'?'},
			offset: 0,
		},
		{
			name:   "orphan low surrogate",
			in:     []uint16{0xDC00},
			want:   []rune{'?'},
			offset: 0,
		},
		{
			name:   "orphan low in the middle",
			in:     []uint16{'A', 0xDC00, 'B'},
			want:   []rune{'A', '?', 'B'},
			offset: 1,
		},
		{
			name:   "high surrogate swallows its invalid partner",
			in:     []uint16{'A', 0xD800, 'B', 'C'},
			want:   []rune{'A', '?', 'C'},
			offset: 1,
		},
		{
			name:   "high surrogate at the end",
			in:     []uint16{'A', 'B', 0xDBFF},
			want:   []rune{'A', 'B', '?'},
			offset: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UTF16ToUTF32(tc.in, SubstituteDefault[rune]())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			got, err = UTF16ToUTF32(tc.in, Fail[rune]())
			if ValidUTF16(tc.in) {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			assert.Nil(t, got)
			var ise *InvalidSequenceError
			require.ErrorAs(t, err, &ise)
			assert.Equal(t, UTF16, ise.Encoding)
			assert.Equal(t, tc.offset, ise.Offset)
		})
	}
}

func TestUTF32ToUTF16(t *testing.T) {
	got, err := UTF32ToUTF16([]rune{0x1F600}, Fail[uint16]())
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, got)

	got, err = UTF32ToUTF16([]rune{'a', 0xDC00, 'b', MaxRune + 1}, Substitute[uint16](0xFFFD))
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 0xFFFD, 'b', 0xFFFD}, got)

	_, err = UTF32ToUTF16([]rune{'a', 0xD800}, Fail[uint16]())
	assert.EqualError(t, err, "invalid UTF-32 sequence at offset 1")
}
