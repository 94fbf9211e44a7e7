// Copyright 2021 The go-ethereum Authors
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

package abi

import (
	"fmt"
	"math/big"
)

var (
	revertErrorFn  = NewFunction("Error", "Error", Arguments{{Name: "message", Type: mustType("string")}}, nil)
	revertPanicFn  = NewFunction("Panic", "Panic", Arguments{{Name: "code", Type: mustType("uint256")}}, nil)
)

func mustType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// panicReasons is the standard Solidity panic-code table.
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum conversion out of bounds",
	0x22: "invalid encoding in storage byte array",
	0x31: "pop on empty array",
	0x32: "array index out of bounds",
	0x41: "out-of-memory allocation",
	0x51: "call to zero-initialized variable of internal function type",
}

// DecodeRevert recognizes the two builtin revert payload encodings a VM
// may emit and decodes them without needing an interface document:
// Error(string), the compiler's default require/revert reason, and
// Panic(uint256), the compiler's default assertion-failure reason. Any
// other (or too-short) selector yields ErrUnknownRevertSelector so the
// caller can fall back to raw-bytes reporting.
func DecodeRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%wpayload shorter than 4 bytes", ErrUnknownRevertSelector)
	}
	var id [4]byte
	copy(id[:], data[:4])

	switch id {
	case revertErrorFn.ID():
		values, err := revertErrorFn.Inputs.Unpack(data[4:])
		if err != nil {
			return "", err
		}
		return values[0].Str, nil
	case revertPanicFn.ID():
		values, err := revertPanicFn.Inputs.Unpack(data[4:])
		if err != nil {
			return "", err
		}
		code := values[0].Num
		reason, ok := panicReasons[safeUint64(code)]
		if !ok {
			reason = fmt.Sprintf("unknown panic code 0x%x", code)
		}
		return reason, nil
	default:
		return "", fmt.Errorf("%w%x", ErrUnknownRevertSelector, id)
	}
}

func safeUint64(n *big.Int) uint64 {
	if !n.IsUint64() {
		return ^uint64(0)
	}
	return n.Uint64()
}
