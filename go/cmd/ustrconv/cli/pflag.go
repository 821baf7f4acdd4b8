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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"vitess.io/ustrings/go/hack"
	"vitess.io/ustrings/go/ustrings"
	"vitess.io/ustrings/go/ustrings/unitio"
)

// FormatFlag adds the pflag.Value interface to a unitio.Format.
type FormatFlag struct {
	name   string
	format unitio.Format
}

var _ pflag.Value = (*FormatFlag)(nil)

// NewFormatFlag returns a FormatFlag holding the format called def. It
// panics if def is not a known format.
func NewFormatFlag(def string) *FormatFlag {
	return &FormatFlag{name: def, format: unitio.MustParseFormat(def)}
}

// Set is part of the pflag.Value interface.
func (v *FormatFlag) Set(arg string) error {
	f, err := unitio.ParseFormat(arg)
	if err != nil {
		return err
	}

	v.name = arg
	v.format = f

	return nil
}

// String is part of the pflag.Value interface.
func (v *FormatFlag) String() string {
	return v.name
}

// Type is part of the pflag.Value interface.
func (v *FormatFlag) Type() string {
	return "format"
}

// Format returns the parsed format.
func (v *FormatFlag) Format() unitio.Format {
	return v.format
}

// ParseReplacement parses a replacement unit given on the command line or in
// a config file. It accepts a single character, or a unit value written as
// 0x41, U+FFFD or a decimal number. The empty string selects the default
// replacement and is returned as 0, so NUL itself is rejected.
func ParseReplacement(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, err := parseReplacement(s)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, fmt.Errorf("invalid replacement %q: NUL cannot be used as a replacement", s)
	}
	return r, nil
}

func parseReplacement(s string) (rune, error) {
	upper := strings.ToUpper(s)
	for _, prefix := range []string{"0X", "U+"} {
		if digits, ok := strings.CutPrefix(upper, prefix); ok {
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil || v > ustrings.MaxRune {
				return 0, fmt.Errorf("invalid replacement %q", s)
			}
			return rune(v), nil
		}
	}

	r, n := ustrings.DecodeUTF8(hack.StringBytes(s))
	if r != ustrings.Invalid && n == len(s) {
		return r, nil
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil && v <= ustrings.MaxRune {
		return rune(v), nil
	}
	return 0, fmt.Errorf("invalid replacement %q: expected one character or a unit value", s)
}

// ParseOnInvalid maps an --on-invalid value to whether invalid sequences are
// substituted.
func ParseOnInvalid(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "substitute", "replace":
		return true, nil
	case "fail", "strict":
		return false, nil
	}
	return false, fmt.Errorf("invalid on-invalid %q: expected substitute or fail", s)
}
