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
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func TestUTF8ToUTF16(t *testing.T) {
	testCases := []struct {
		name    string
		in      []byte
		policy  Policy[uint16]
		want    []uint16
		wantErr string
	}{
		{
			name:   "valid",
			in:     []byte("héllo 😀 wörld"),
			policy: Fail[uint16](),
			want:   utf16.Encode([]rune("héllo 😀 wörld")),
		},
		{
			name:   "one replacement per invalid sequence",
			in:     []byte("a\xff\xe2\x82"),
			policy: Substitute[uint16](0xFFFD),
			want:   []uint16{'a', 0xFFFD, 0xFFFD},
		},
		{
			name:    "invalid lead",
			in:      []byte("ab\xff"),
			policy:  Fail[uint16](),
			wantErr: "invalid UTF-8 sequence at offset 2",
		},
		{
			name:   "encoded surrogate is substituted by the UTF-16 stage",
			in:     []byte("ab\xed\xa0\x80c"),
			policy: SubstituteDefault[uint16](),
			want:   []uint16{'a', 'b', '?', 'c'},
		},
		{
			name:    "encoded surrogate reports its UTF-8 offset",
			in:      []byte("é\xed\xa0\x80c"),
			policy:  Fail[uint16](),
			wantErr: "invalid UTF-8 sequence at offset 2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UTF8ToUTF16(tc.in, tc.policy)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrInvalidSequence)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUTF16ToUTF8(t *testing.T) {
	testCases := []struct {
		name    string
		in      []uint16
		policy  Policy[byte]
		want    []byte
		wantErr string
	}{
		{
			name:   "valid",
			in:     utf16.Encode([]rune("héllo 😀")),
			policy: Fail[byte](),
			want:   []byte("héllo 😀"),
		},
		{
			name:   "lone surrogates",
			in:     []uint16{0xD800, 'a', 0xDC00},
			policy: SubstituteDefault[byte](),
			want:   []byte("??"),
		},
		{
			name:   "non ASCII replacement is emitted once and as is",
			in:     []uint16{'a', 0xDC00, 'b'},
			policy: Substitute[byte](0xBF),
			want:   []byte{'a', 0xBF, 'b'},
		},
		{
			name:    "fail",
			in:      []uint16{'a', 'b', 0xDC00},
			policy:  Fail[byte](),
			wantErr: "invalid UTF-16 sequence at offset 2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UTF16ToUTF8(tc.in, tc.policy)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnitOffset(t *testing.T) {
	src := []byte("aé\xff😀b")
	assert.Equal(t, 0, unitOffset(src, 0, DecodeUTF8))
	assert.Equal(t, 1, unitOffset(src, 1, DecodeUTF8))
	assert.Equal(t, 3, unitOffset(src, 2, DecodeUTF8))
	assert.Equal(t, 4, unitOffset(src, 3, DecodeUTF8))
	assert.Equal(t, 8, unitOffset(src, 4, DecodeUTF8))
	assert.Equal(t, len(src), unitOffset(src, 100, DecodeUTF8))
}

var referenceTexts = []string{
	"",
	"plain ascii",
	"Ünïcödé",
	"한국어 시험",
	"😊😂🤢",
	"mixed: a é € 😀 \u0000 ￿ \U0010ffff",
}

// TestAgainstXText checks the conversions against golang.org/x/text on
// well-formed input.
func TestAgainstXText(t *testing.T) {
	utf16le := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32be := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)

	for _, text := range referenceTexts {
		u16, err := UTF8ToUTF16([]byte(text), Fail[uint16]())
		require.NoError(t, err)

		want, err := utf16le.NewEncoder().Bytes([]byte(text))
		require.NoError(t, err)
		got := make([]byte, 0, 2*len(u16))
		for _, u := range u16 {
			got = binary.LittleEndian.AppendUint16(got, u)
		}
		assert.Equal(t, want, got, "UTF-16 of %q", text)

		back, err := utf16le.NewDecoder().Bytes(got)
		require.NoError(t, err)
		u8, err := UTF16ToUTF8(u16, Fail[byte]())
		require.NoError(t, err)
		assert.Equal(t, back, u8)

		u32, err := UTF8ToUTF32([]byte(text), Fail[rune]())
		require.NoError(t, err)
		want, err = utf32be.NewEncoder().Bytes([]byte(text))
		require.NoError(t, err)
		got = got[:0]
		for _, r := range u32 {
			got = binary.BigEndian.AppendUint32(got, uint32(r))
		}
		assert.Equal(t, want, got, "UTF-32 of %q", text)
	}
}
