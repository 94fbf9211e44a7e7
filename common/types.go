// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Lengths of hashes and addresses in bytes.
const (
	// HashLength is the expected length of a topic/log hash.
	HashLength = 32
	// AddressLength is the expected length of an address.
	AddressLength = 20
)

// Hash represents a 32-byte word, used for topics and selector-derived IDs.
type Hash [HashLength]byte

// BytesToHash sets h to the value of b, left-padding or truncating from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns the raw bytes of h.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the lower-case, 0x-prefixed hex encoding of h.
func (h Hash) Hex() string { return Encode(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// Address represents a 20-byte VM account address.
type Address [AddressLength]byte

// BytesToAddress sets a to the value of b, left-padding or truncating from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// HexToAddress parses a hex string (with or without 0x prefix) into an Address.
func HexToAddress(s string) Address { return BytesToAddress(FromHex(s)) }

// Bytes returns the raw bytes of a.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the lower-case, 0x-prefixed hex encoding of a.
func (a Address) Hex() string { return Encode(a[:]) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// GoString implements fmt.GoStringer for readable test failure output.
func (a Address) GoString() string { return fmt.Sprintf("common.HexToAddress(%q)", a.Hex()) }

// Encode returns the lower-case hex encoding of b with a 0x prefix, the
// canonical wire representation used at every codec boundary (spec §6).
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// FromHex decodes a hex string, tolerating an optional 0x/0X prefix and an
// odd number of digits (left-padded with a zero nibble).
func FromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// IsHex reports whether s is a valid (optionally 0x-prefixed) hex string.
func IsHex(s string) bool {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) == 0 {
		return true
	}
	return len(s)%2 == 0 && strings.IndexFunc(s, notHexChar) == -1
}

func notHexChar(r rune) bool {
	switch {
	case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		return false
	}
	return true
}

// RightPadBytes right-pads b with zero bytes up to size, returning a fresh
// slice; b is never mutated.
func RightPadBytes(b []byte, size int) []byte {
	if len(b) >= size {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}

// LeftPadBytes left-pads b with zero bytes up to size, returning a fresh
// slice; b is never mutated.
func LeftPadBytes(b []byte, size int) []byte {
	if len(b) >= size {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
