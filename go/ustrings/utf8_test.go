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
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceLength(t *testing.T) {
	testCases := []struct {
		lead byte
		want int
	}{
		{0x00, 1},
		{'a', 1},
		{0x7F, 1},
		{0x80, 0},
		{0xBF, 0},
		{0xC0, 2},
		{0xDF, 2},
		{0xE0, 3},
		{0xEF, 3},
		{0xF0, 4},
		{0xF7, 4},
		{0xF8, 0},
		{0xFF, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, SequenceLength(tc.lead), "lead %#x", tc.lead)
	}
}

func TestIsContinuation(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		want := b >= 0x80 && b <= 0xBF
		assert.Equal(t, want, IsContinuation(byte(b)), "byte %#x", b)
	}
}

func TestUTF8Len(t *testing.T) {
	testCases := []struct {
		r    rune
		want int
	}{
		{0, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xD800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{MaxRune, 4},
		{MaxRune + 1, 0},
		{-1, 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, UTF8Len(tc.r), "rune %#x", tc.r)

		var buf [UTFMax]byte
		assert.Equal(t, tc.want, EncodeUTF8(buf[:], tc.r), "rune %#x", tc.r)
	}
}

func TestEncodeUTF8(t *testing.T) {
	testCases := []struct {
		r    rune
		want []byte
	}{
		{'a', []byte{0x61}},
		{0xE9, []byte{0xC3, 0xA9}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{MaxRune, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
		// Surrogates are not rejected by the UTF-8 encoder.
		{0xD800, []byte{0xED, 0xA0, 0x80}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%U", tc.r), func(t *testing.T) {
			var buf [UTFMax]byte
			n := EncodeUTF8(buf[:], tc.r)
			assert.Equal(t, tc.want, buf[:n])

			got, n := AppendUTF8([]byte("x"), tc.r)
			assert.Equal(t, len(tc.want), n)
			assert.Equal(t, append([]byte("x"), tc.want...), got)
		})
	}
}

func TestEncodeUTF8OutOfRange(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	assert.Zero(t, EncodeUTF8(buf, MaxRune+1))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)

	got, n := AppendUTF8([]byte("ab"), MaxRune+1)
	assert.Zero(t, n)
	assert.Equal(t, []byte("ab"), got)

	// Rejected whatever the policy.
	_, err := UTF32ToUTF8([]rune{MaxRune + 1}, Fail[byte]())
	assert.ErrorIs(t, err, ErrInvalidSequence)
	out, err := UTF32ToUTF8([]rune{MaxRune + 1}, SubstituteDefault[byte]())
	require.NoError(t, err)
	assert.Equal(t, []byte("?"), out)
}

func TestDecodeUTF8(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want rune
		size int
	}{
		{"empty", nil, Invalid, 0},
		{"ascii", []byte("ab"), 'a', 1},
		{"two bytes", []byte{0xC3, 0xA9}, 0xE9, 2},
		{"three bytes", []byte{0xE2, 0x82, 0xAC, 'a'}, 0x20AC, 3},
		{"four bytes", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
		{"invalid lead", []byte{0xFF, 'a'}, Invalid, 1},
		{"lone continuation", []byte{0x80, 'a'}, Invalid, 1},
		{"truncated", []byte{0xE2, 0x82}, Invalid, 2},
		{"truncated lead only", []byte{0xC3}, Invalid, 1},
		{"bad continuation", []byte{0xE2, 'A', 'A', 'B'}, Invalid, 3},
		{"bad last continuation", []byte{0xF0, 0x9F, 0x98, 'A'}, Invalid, 4},
		{"above max rune", []byte{0xF4, 0x90, 0x80, 0x80}, Invalid, 4},
		{"five bit lead", []byte{0xF7, 0xBF, 0xBF, 0xBF}, Invalid, 4},
		{"overlong", []byte{0xC0, 0x80}, 0, 2},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, 0xD800, 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, size := DecodeUTF8(tc.in)
			assert.Equal(t, tc.want, r)
			assert.Equal(t, tc.size, size)
		})
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	var buf [UTFMax]byte
	for r := rune(0); r <= MaxRune; r++ {
		if IsSurrogate(r) {
			continue
		}
		n := EncodeUTF8(buf[:], r)
		require.Equal(t, utf8.RuneLen(r), n, "rune %U", r)
		require.Equal(t, utf8.AppendRune(nil, r), buf[:n], "rune %U", r)

		got, size := DecodeUTF8(buf[:n])
		require.Equal(t, r, got, "rune %U", r)
		require.Equal(t, n, size, "rune %U", r)
	}
}

func TestUTF8ToUTF32(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		want   []rune
		offset int
	}{
		{
			name: "whole input is decoded",
			in:   []byte("héllo, wörld €😀"),
			want: []rune("héllo, wörld €😀"),
		},
		{
			name: "empty",
			in:   nil,
			want: []rune{},
		},
		{
			name:   "invalid lead byte",
			in:     []byte{0xFF},
			want:   []rune{'?'},
			offset: 0,
		},
		{
			name:   "truncated sequence consumes the rest",
			in:     []byte{0xE2, 0x82},
			want:   []rune{'?'},
			offset: 0,
		},
		{
			name:   "invalid byte in the middle",
			in:     []byte("a\xffb"),
			want:   []rune{'a', '?', 'b'},
			offset: 1,
		},
		{
			name:   "bad continuation skips the announced length",
			in:     []byte("a\xe2AAb"),
			want:   []rune{'a', '?', 'b'},
			offset: 1,
		},
		{
			name:   "one replacement per sequence",
			in:     []byte("\x80\x80a\xc3"),
			want:   []rune{'?', '?', 'a', '?'},
			offset: 0,
		},
		{
			name:   "truncated at the end",
			in:     []byte("ab\xf0\x9f\x98"),
			want:   []rune{'a', 'b', '?'},
			offset: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UTF8ToUTF32(tc.in, SubstituteDefault[rune]())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), RuneCountUTF8(tc.in))

			got, err = UTF8ToUTF32(tc.in, Fail[rune]())
			if ValidUTF8(tc.in) {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			assert.Nil(t, got)
			var ise *InvalidSequenceError
			require.ErrorAs(t, err, &ise)
			assert.Equal(t, UTF8, ise.Encoding)
			assert.Equal(t, tc.offset, ise.Offset)
		})
	}
}

func TestUTF32ToUTF8(t *testing.T) {
	got, err := UTF32ToUTF8([]rune("héllo 😀"), Fail[byte]())
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo 😀"), got)

	// The replacement byte is emitted as is, even when it is not ASCII.
	got, err = UTF32ToUTF8([]rune{'a', -1, 'b', MaxRune + 1}, Substitute[byte](0xFF))
	require.NoError(t, err)
	assert.Equal(t, []byte("a\xffb\xff"), got)

	_, err = UTF32ToUTF8([]rune{'a', 'b', -1}, Fail[byte]())
	assert.EqualError(t, err, "invalid UTF-32 sequence at offset 2")

	got, err = UTF32ToUTF8([]rune{0xDFFF}, Fail[byte]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xED, 0xBF, 0xBF}, got)
}

func TestValidUTF8(t *testing.T) {
	assert.True(t, ValidUTF8(nil))
	assert.True(t, ValidUTF8([]byte("한국어 시험")))
	assert.False(t, ValidUTF8([]byte("abc\xe2\x82")))
	assert.False(t, ValidUTF8([]byte{0xF8, 0x80, 0x80, 0x80, 0x80}))
}
