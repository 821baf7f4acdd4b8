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

package unitio

import (
	"errors"
	"fmt"

	"vitess.io/ustrings/go/ustrings"
)

// ErrReplacementRange is returned when the replacement does not fit in one
// code unit of the target format. UTF-8 output only takes ASCII
// replacements.
var ErrReplacementRange = errors.New("replacement does not fit in a target code unit")

// Options controls a Transcode call.
type Options struct {
	// Substitute replaces invalid sequences instead of failing on the first
	// one.
	Substitute bool
	// Replacement is the target code unit emitted for each invalid sequence.
	// Zero means ustrings.DefaultReplacement.
	Replacement rune
}

func (o Options) replacement() rune {
	if o.Replacement == 0 {
		return ustrings.DefaultReplacement
	}
	return o.Replacement
}

func policy[U ustrings.Unit](o Options) ustrings.Policy[U] {
	if !o.Substitute {
		return ustrings.Fail[U]()
	}
	return ustrings.Substitute(U(o.replacement()))
}

func maxUnit(f Format) rune {
	switch f.UnitSize() {
	case 1:
		return 0x7F
	case 2:
		return 0xFFFF
	}
	return ustrings.MaxRune
}

// Transcode converts data from one serialized format to another. Invalid
// sequences are handled according to opts; in fail mode the returned error
// wraps a *ustrings.InvalidSequenceError whose offset counts code units of
// the source format, not bytes.
//
// Conversions between two formats of the same encoding form sanitize the
// input through UTF-32.
func Transcode(data []byte, from, to Format, opts Options) ([]byte, error) {
	if opts.Substitute && (opts.replacement() < 0 || opts.replacement() > maxUnit(to)) {
		return nil, fmt.Errorf("%w: %#x for %v", ErrReplacementRange, opts.replacement(), to)
	}
	src, err := Decode(data, from)
	if err != nil {
		return nil, err
	}

	var out any
	switch src := src.(type) {
	case []byte:
		out, err = fromUTF8(src, to, opts)
	case []uint16:
		out, err = fromUTF16(src, to, opts)
	case []rune:
		out, err = fromUTF32(src, to, opts)
	case []ustrings.WChar:
		out, err = fromWide(src, from.Wide, to, opts)
	}
	if err != nil {
		return nil, err
	}
	return Encode(out, to), nil
}

func fromUTF8(src []byte, to Format, opts Options) (any, error) {
	switch to.Encoding {
	case ustrings.UTF8:
		r, err := ustrings.UTF8ToUTF32(src, policy[rune](opts))
		if err != nil {
			return nil, err
		}
		return ustrings.UTF32ToUTF8(r, ustrings.Fail[byte]())
	case ustrings.UTF16:
		return ustrings.UTF8ToUTF16(src, policy[uint16](opts))
	case ustrings.UTF32:
		return ustrings.UTF8ToUTF32(src, policy[rune](opts))
	case ustrings.Wide:
		return to.Wide.FromUTF8(src, policy[ustrings.WChar](opts))
	}
	return nil, fmt.Errorf("unknown encoding %v", to.Encoding)
}

func fromUTF16(src []uint16, to Format, opts Options) (any, error) {
	switch to.Encoding {
	case ustrings.UTF8:
		return ustrings.UTF16ToUTF8(src, policy[byte](opts))
	case ustrings.UTF16:
		r, err := ustrings.UTF16ToUTF32(src, policy[rune](opts))
		if err != nil {
			return nil, err
		}
		return ustrings.UTF32ToUTF16(r, ustrings.Fail[uint16]())
	case ustrings.UTF32:
		return ustrings.UTF16ToUTF32(src, policy[rune](opts))
	case ustrings.Wide:
		return to.Wide.FromUTF16(src, policy[ustrings.WChar](opts))
	}
	return nil, fmt.Errorf("unknown encoding %v", to.Encoding)
}

func fromUTF32(src []rune, to Format, opts Options) (any, error) {
	switch to.Encoding {
	case ustrings.UTF8:
		return ustrings.UTF32ToUTF8(src, policy[byte](opts))
	case ustrings.UTF16:
		return ustrings.UTF32ToUTF16(src, policy[uint16](opts))
	case ustrings.UTF32:
		return ustrings.UTF32ToUTF32(src, policy[rune](opts))
	case ustrings.Wide:
		return to.Wide.FromUTF32(src, policy[ustrings.WChar](opts))
	}
	return nil, fmt.Errorf("unknown encoding %v", to.Encoding)
}

func fromWide(src []ustrings.WChar, codec ustrings.WideCodec, to Format, opts Options) (any, error) {
	switch to.Encoding {
	case ustrings.UTF8:
		return codec.ToUTF8(src, policy[byte](opts))
	case ustrings.UTF16:
		return codec.ToUTF16(src, policy[uint16](opts))
	case ustrings.UTF32:
		return codec.ToUTF32(src, policy[rune](opts))
	case ustrings.Wide:
		r, err := codec.ToUTF32(src, policy[rune](opts))
		if err != nil {
			return nil, err
		}
		// A wide32 source passes through unvalidated, one rune per unit, so
		// invalid units are caught here at their source offsets.
		r, err = ustrings.UTF32ToUTF32(r, policy[rune](opts))
		if err != nil {
			return nil, asSource(err, ustrings.Wide)
		}
		return to.Wide.FromUTF32(r, ustrings.Fail[ustrings.WChar]())
	}
	return nil, fmt.Errorf("unknown encoding %v", to.Encoding)
}

// asSource relabels an invalid sequence error raised by an intermediate
// stage with the encoding of the source.
func asSource(err error, enc ustrings.Encoding) error {
	var ise *ustrings.InvalidSequenceError
	if errors.As(err, &ise) {
		return &ustrings.InvalidSequenceError{Encoding: enc, Offset: ise.Offset}
	}
	return err
}
