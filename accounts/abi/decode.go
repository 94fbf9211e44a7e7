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

package abi

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/vmabi/codec/common"
)

// DecodeParams implements the Decoder (spec §4.4) over the top-level
// argument tuple.
func DecodeParams(types []Type, data []byte) ([]*Value, error) {
	return decodeSequence(types, data)
}

// decodeSequence decodes types out of block, a slice that begins at this
// sequence's own layout origin: every offset read from a head word here
// is relative to byte 0 of block, never to any outer buffer. That is what
// makes the recursive-relative offset rule (spec §4.4) hold without a
// floor-alignment correction: a nested tuple or dynamic array always
// hands its children a block that starts where its own tail begins.
//
// A parameter whose head word lies entirely past the end of block is
// treated as absent rather than truncated, provided block was not simply
// empty to begin with: it and every parameter after it decode to a nil
// *Value. This tolerates encoders that omit trailing all-zero dynamic
// arguments; callers that require every parameter present should check
// the returned slice themselves. An empty block (len(block) == 0) is the
// same absence, not an error, even for the first parameter: decoding k
// types out of nothing yields k nil sentinels. A non-empty block that
// runs out of room mid-layout is genuinely truncated and reports
// ErrTruncated.
func decodeSequence(types []Type, block []byte) ([]*Value, error) {
	values := make([]*Value, len(types))

	if len(block) == 0 {
		return values, nil
	}

	cursor := 0
	headWidths := make([]int, len(types))
	for i, t := range types {
		if t.IsDynamic() {
			headWidths[i] = 32
		} else {
			headWidths[i] = t.headWidth()
		}
	}

	for i, t := range types {
		if cursor+headWidths[i] > len(block) {
			if cursor == 0 {
				// Buffer is non-empty but too short for even the
				// first parameter: this is truncated input, not a
				// trailing omission.
				return nil, truncatedErr(cursor+headWidths[i], len(block))
			}
			// Absent trailing parameter: leave this and the rest nil.
			return values, nil
		}
		if t.IsDynamic() {
			offset, err := readUintWord(block, cursor)
			if err != nil {
				return nil, err
			}
			offsetU := offset.Uint64()
			// Compared in uint64 throughout: an offset in [2^63, 2^64)
			// would go negative if narrowed to int first, which could
			// slip past a signed "offset > len(block)" check and reach
			// the slice expression below with a bogus small value.
			if !offset.IsUint64() || offsetU > uint64(len(block)) {
				return nil, invalidOffsetErr(offsetU, len(block))
			}
			v, err := decodeDynamic(t, block[offsetU:], i)
			if err != nil {
				return nil, err
			}
			values[i] = v
		} else {
			v, err := decodeStatic(t, block[cursor:cursor+headWidths[i]], i)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		cursor += headWidths[i]
	}
	return values, nil
}

func decodeStatic(t Type, word []byte, pos int) (*Value, error) {
	switch t.T {
	case UintTy:
		n, err := readUintWordChecked(word, t.Size, pos)
		if err != nil {
			return nil, err
		}
		return NewUintValue(n), nil
	case IntTy:
		n, err := readIntWordChecked(word, t.Size, pos)
		if err != nil {
			return nil, err
		}
		return NewIntValue(n), nil
	case BoolTy:
		for _, b := range word[:31] {
			if b != 0 {
				return nil, rangeErr(pos, t)
			}
		}
		switch word[31] {
		case 0:
			return NewBoolValue(false), nil
		case 1:
			return NewBoolValue(true), nil
		default:
			return nil, rangeErr(pos, t)
		}
	case AddressTy:
		for _, b := range word[:12] {
			if b != 0 {
				return nil, rangeErr(pos, t)
			}
		}
		return NewAddressValue(common.BytesToAddress(word[12:32])), nil
	case FixedBytesTy:
		fb := make([]byte, t.Size)
		copy(fb, word[:t.Size])
		return NewFixedBytesValue(fb), nil
	case ArrayTy:
		elemTypes := make([]Type, t.Size)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		elems, err := decodeSequence(elemTypes, word)
		if err != nil {
			return nil, err
		}
		return NewArrayValue(elems), nil
	case TupleTy:
		fieldTypes := make([]Type, len(t.TupleElems))
		for i, f := range t.TupleElems {
			fieldTypes[i] = f.Type
		}
		fields, err := decodeSequence(fieldTypes, word)
		if err != nil {
			return nil, err
		}
		return NewTupleValue(fields), nil
	default:
		return nil, typeMismatchErr(pos, t, 0xfe)
	}
}

// decodeDynamic decodes a dynamic type from tail, a slice beginning at
// that type's own layout origin.
func decodeDynamic(t Type, tail []byte, pos int) (*Value, error) {
	switch t.T {
	case BytesTy:
		b, err := decodeBytesBlob(tail, pos)
		if err != nil {
			return nil, err
		}
		return NewBytesValue(b), nil
	case StringTy:
		b, err := decodeBytesBlob(tail, pos)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, invalidUtf8Err(pos)
		}
		return NewStringValue(string(b)), nil
	case SliceTy:
		if len(tail) < 32 {
			return nil, truncatedErr(32, len(tail))
		}
		n, err := readUintWord(tail, 0)
		if err != nil {
			return nil, err
		}
		if !n.IsUint64() {
			return nil, rangeErr(pos, t)
		}
		countU := n.Uint64()
		// Every element occupies at least 32 bytes in its own head slot,
		// static or dynamic, so this is a safe lower bound on the bytes
		// remaining — checked in uint64 before any conversion to int, so
		// a length word near 2^64 can never wrap around into a small or
		// negative count and reach the allocation below.
		if countU > uint64(len(tail)-32)/32 {
			return nil, fmt.Errorf("%wargument %d: slice length %d exceeds remaining buffer", ErrTruncated, pos, countU)
		}
		count := int(countU)
		elemTypes := make([]Type, count)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		elems, err := decodeSequence(elemTypes, tail[32:])
		if err != nil {
			return nil, err
		}
		return NewSliceValue(elems), nil
	case ArrayTy:
		elemTypes := make([]Type, t.Size)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		elems, err := decodeSequence(elemTypes, tail)
		if err != nil {
			return nil, err
		}
		return NewArrayValue(elems), nil
	case TupleTy:
		fieldTypes := make([]Type, len(t.TupleElems))
		for i, f := range t.TupleElems {
			fieldTypes[i] = f.Type
		}
		fields, err := decodeSequence(fieldTypes, tail)
		if err != nil {
			return nil, err
		}
		return NewTupleValue(fields), nil
	default:
		return nil, typeMismatchErr(pos, t, 0xfe)
	}
}

func decodeBytesBlob(tail []byte, pos int) ([]byte, error) {
	if len(tail) < 32 {
		return nil, truncatedErr(32, len(tail))
	}
	n, err := readUintWord(tail, 0)
	if err != nil {
		return nil, err
	}
	if !n.IsUint64() {
		return nil, rangeErr(pos, Type{T: BytesTy})
	}
	lengthU := n.Uint64()
	// Bound-check in uint64 before converting to int: a length word in
	// [2^63, 2^64) would otherwise become negative and bypass the
	// len(tail) < need check below, panicking in make([]byte, length).
	if lengthU > uint64(len(tail)-32) {
		return nil, fmt.Errorf("%wargument %d: byte length %d exceeds remaining buffer", ErrTruncated, pos, lengthU)
	}
	length := int(lengthU)
	need := 32 + ceil32(length)
	if len(tail) < need {
		return nil, truncatedErr(need, len(tail))
	}
	out := make([]byte, length)
	copy(out, tail[32:32+length])
	return out, nil
}

func readUintWord(block []byte, at int) (*big.Int, error) {
	if at+32 > len(block) {
		return nil, truncatedErr(at+32, len(block))
	}
	u := new(uint256.Int).SetBytes(block[at : at+32])
	return u.ToBig(), nil
}

func readUintWordChecked(word []byte, bits int, pos int) (*big.Int, error) {
	u := new(uint256.Int).SetBytes(word)
	n := u.ToBig()
	if n.BitLen() > bits {
		return nil, rangeErr(pos, Type{T: UintTy, Size: bits})
	}
	return n, nil
}

func readIntWordChecked(word []byte, bits int, pos int) (*big.Int, error) {
	u := new(uint256.Int).SetBytes(word)
	n := u.ToBig()
	half := new(big.Int).Lsh(big.NewInt(1), 255)
	if n.Cmp(half) >= 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 256)
		n = new(big.Int).Sub(n, mod)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	lo := new(big.Int).Neg(limit)
	hi := new(big.Int).Sub(limit, big.NewInt(1))
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, rangeErr(pos, Type{T: IntTy, Size: bits})
	}
	return n, nil
}

func invalidUtf8Err(pos int) error {
	return fmt.Errorf("%wargument %d: string is not valid utf-8", ErrInvalidUtf8, pos)
}
