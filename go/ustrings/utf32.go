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

// ValidRune reports whether r is a Unicode scalar value: in [0, MaxRune] and
// outside the surrogate range.
func ValidRune(r rune) bool {
	return 0 <= r && r < surr1 || surr3 <= r && r <= MaxRune
}

// ValidUTF32 reports whether every unit of src is a valid code point.
func ValidUTF32(src []rune) bool {
	for _, r := range src {
		if !ValidRune(r) {
			return false
		}
	}
	return true
}

// UTF32ToUTF32 returns a copy of src in which every unit that is not a valid
// code point has been handled by p.
func UTF32ToUTF32(src []rune, p Policy[rune]) ([]rune, error) {
	var err error
	dst := make([]rune, 0, len(src))
	for i, r := range src {
		if ValidRune(r) {
			dst = append(dst, r)
			continue
		}
		if dst, err = p.invalid(dst, UTF32, i); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
