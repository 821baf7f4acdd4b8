/*
Copyright 2019 The Vitess Authors.

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

package hack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteToString(t *testing.T) {
	v1 := []byte("1234")
	s := String(v1)
	assert.Equal(t, "1234", s)

	v1 = []byte("")
	s = String(v1)
	assert.Equal(t, "", s)

	v1 = nil
	s = String(v1)
	assert.Equal(t, "", s)
}

func TestStringToByte(t *testing.T) {
	s := "1234"
	b := StringBytes(s)
	assert.Equal(t, []byte("1234"), b)

	s = ""
	b = StringBytes(s)
	assert.Nil(t, b)
}

func TestCastSlice(t *testing.T) {
	type wchar uint32

	runes := []rune{'a', 0x1F600, -1}
	w := CastSlice[wchar](runes)
	require.Len(t, w, 3)
	assert.Equal(t, wchar('a'), w[0])
	assert.Equal(t, wchar(0x1F600), w[1])
	assert.Equal(t, wchar(0xFFFFFFFF), w[2])

	// Shares memory with its input.
	w[0] = 'b'
	assert.Equal(t, 'b', runes[0])

	assert.Nil(t, CastSlice[wchar]([]rune(nil)))
	assert.NotNil(t, CastSlice[wchar]([]rune{}))
	assert.Empty(t, CastSlice[wchar]([]rune{}))
}

func TestCastSliceSizeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		CastSlice[uint16]([]rune{'a'})
	})
}
