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

// Package unitio converts between byte streams and the code unit slices
// used by package ustrings, and dispatches a conversion between two
// serialized formats to the matching ustrings function.
package unitio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrTruncatedUnit is returned when a byte stream does not hold a whole
// number of code units.
var ErrTruncatedUnit = errors.New("truncated code unit")

// ByteOrder is the serialization order of multi-byte code units.
type ByteOrder int8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ParseByteOrder accepts "le", "little", "be" and "big" in any case.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "le", "little", "little-endian":
		return LittleEndian, nil
	case "be", "big", "big-endian":
		return BigEndian, nil
	}
	return LittleEndian, fmt.Errorf("unknown byte order %q", s)
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "BE"
	}
	return "LE"
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func truncated(n, size int) error {
	return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedUnit, n, size)
}

// Unpack16 reads 16-bit code units from b.
func Unpack16(b []byte, o ByteOrder) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, truncated(len(b), 2)
	}
	bo := o.binary()
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = bo.Uint16(b[2*i:])
	}
	return units, nil
}

// Pack16 serializes 16-bit code units.
func Pack16(units []uint16, o ByteOrder) []byte {
	bo := o.binary().(binary.AppendByteOrder)
	b := make([]byte, 0, 2*len(units))
	for _, u := range units {
		b = bo.AppendUint16(b, u)
	}
	return b
}

// Unpack32 reads 32-bit code units from b.
func Unpack32(b []byte, o ByteOrder) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, truncated(len(b), 4)
	}
	bo := o.binary()
	units := make([]uint32, len(b)/4)
	for i := range units {
		units[i] = bo.Uint32(b[4*i:])
	}
	return units, nil
}

// Pack32 serializes 32-bit code units.
func Pack32(units []uint32, o ByteOrder) []byte {
	bo := o.binary().(binary.AppendByteOrder)
	b := make([]byte, 0, 4*len(units))
	for _, u := range units {
		b = bo.AppendUint32(b, u)
	}
	return b
}
