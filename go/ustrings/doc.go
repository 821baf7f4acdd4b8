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

/*
Package ustrings converts in-memory Unicode text between UTF-8, UTF-16,
UTF-32 and the platform's native wide encoding.

Every encoding is handled as a slice of fixed-width code units:

	UTF-8   []byte
	UTF-16  []uint16
	UTF-32  []rune
	wide    []WChar

There is one conversion function per (source, target) pair. Each one takes a
Policy for the target unit type that decides what happens to invalid input:
Substitute emits one replacement unit per invalid sequence and keeps going,
Fail aborts on the first invalid sequence with an *InvalidSequenceError that
carries the offset of the offending unit in the source slice.

	u16, err := ustrings.UTF8ToUTF16(src, ustrings.Substitute[uint16]('?'))

UTF-8 <-> UTF-16 always pivots through UTF-32, so the invalid input policy is
applied the same way regardless of the path a conversion takes.

The wide encoding is 16 bits wide on Windows and 32 bits wide elsewhere (see
NativeWideWidth). A WideCodec can also be built for an explicit width; a
codec for an unsupported width fails every conversion with
ErrUnsupportedWideWidth.

All functions are pure: they allocate a fresh output slice, never alias their
input and keep no state between calls, so they are safe for concurrent use.
*/
package ustrings
