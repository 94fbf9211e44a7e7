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
	"math/big"

	"github.com/holiman/uint256"

	"github.com/vmabi/codec/common"
)

// EncodeParams implements the Encoder (spec §4.3), treating types/values
// as the top-level argument tuple: a head/tail layout with no relative
// offset base of its own (the outermost call's "layout origin" is byte 0
// of the returned slice).
func EncodeParams(types []Type, values []*Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, arityErr(len(types), len(values))
	}
	return encodeSequence(types, values)
}

// encodeSequence lays out a head/tail block for types/values. Every
// recursive call that needs a "layout origin" (spec DESIGN NOTES §9) gets
// one implicitly: offsets written into the head are always relative to
// the start of the slice this call returns, and the caller is responsible
// for embedding that slice wherever the outer layout places it. This is
// what keeps nested-dynamic offsets from ever needing floor-alignment
// correction.
func encodeSequence(types []Type, values []*Value) ([]byte, error) {
	heads := make([][]byte, len(types))
	tails := make([][]byte, len(types))

	headSize := 0
	for _, t := range types {
		if t.IsDynamic() {
			headSize += 32
		} else {
			headSize += t.headWidth()
		}
	}

	tailOffset := headSize
	for i, t := range types {
		v := values[i]
		if err := checkKind(t, v, i); err != nil {
			return nil, err
		}
		if t.IsDynamic() {
			enc, err := encodeDynamic(t, v, i)
			if err != nil {
				return nil, err
			}
			off, err := encodeUintWord(big.NewInt(int64(tailOffset)), 256, i)
			if err != nil {
				return nil, err
			}
			heads[i] = off
			tails[i] = enc
			tailOffset += len(enc)
		} else {
			enc, err := encodeStatic(t, v, i)
			if err != nil {
				return nil, err
			}
			heads[i] = enc
		}
	}

	buf := make([]byte, 0, tailOffset)
	for _, h := range heads {
		buf = append(buf, h...)
	}
	for _, tl := range tails {
		buf = append(buf, tl...)
	}
	return buf, nil
}

// encodeStatic encodes a non-dynamic t/v pair inline (no offset slot).
func encodeStatic(t Type, v *Value, pos int) ([]byte, error) {
	switch t.T {
	case UintTy:
		return encodeUintWord(v.Num, t.Size, pos)
	case IntTy:
		return encodeIntWord(v.Num, t.Size, pos)
	case BoolTy:
		w := make([]byte, 32)
		if v.Bool {
			w[31] = 1
		}
		return w, nil
	case AddressTy:
		return common.LeftPadBytes(v.Addr.Bytes(), 32), nil
	case FixedBytesTy:
		if len(v.FB) != t.Size {
			return nil, rangeErr(pos, t)
		}
		return common.RightPadBytes(v.FB, 32), nil
	case ArrayTy:
		elemTypes := make([]Type, t.Size)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		return encodeSequence(elemTypes, v.List)
	case TupleTy:
		fieldTypes := make([]Type, len(t.TupleElems))
		for i, f := range t.TupleElems {
			fieldTypes[i] = f.Type
		}
		return encodeSequence(fieldTypes, v.Tuple)
	default:
		return nil, typeMismatchErr(pos, t, v.T)
	}
}

// encodeDynamic encodes a dynamic t/v pair as a self-contained blob that
// the caller places in its tail region.
func encodeDynamic(t Type, v *Value, pos int) ([]byte, error) {
	switch t.T {
	case BytesTy:
		return encodeBytesBlob(v.B, pos)
	case StringTy:
		return encodeBytesBlob([]byte(v.Str), pos)
	case SliceTy:
		n := len(v.List)
		elemTypes := make([]Type, n)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		body, err := encodeSequence(elemTypes, v.List)
		if err != nil {
			return nil, err
		}
		lenWord, err := encodeUintWord(big.NewInt(int64(n)), 256, pos)
		if err != nil {
			return nil, err
		}
		return append(lenWord, body...), nil
	case ArrayTy:
		elemTypes := make([]Type, t.Size)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		return encodeSequence(elemTypes, v.List)
	case TupleTy:
		fieldTypes := make([]Type, len(t.TupleElems))
		for i, f := range t.TupleElems {
			fieldTypes[i] = f.Type
		}
		return encodeSequence(fieldTypes, v.Tuple)
	default:
		return nil, typeMismatchErr(pos, t, v.T)
	}
}

func encodeBytesBlob(data []byte, pos int) ([]byte, error) {
	lenWord, err := encodeUintWord(big.NewInt(int64(len(data))), 256, pos)
	if err != nil {
		return nil, err
	}
	padded := common.RightPadBytes(data, ceil32(len(data)))
	return append(lenWord, padded...), nil
}

func ceil32(n int) int {
	return (n + 31) / 32 * 32
}

// encodeUintWord range-checks n against an unsigned field of the given bit
// width and returns its big-endian 32-byte word, via holiman/uint256 for
// the fixed-width arithmetic (spec DESIGN NOTES: "a fixed-width 256-bit
// integer facility").
func encodeUintWord(n *big.Int, bits int, pos int) ([]byte, error) {
	if n == nil || n.Sign() < 0 || n.BitLen() > bits {
		return nil, rangeErr(pos, Type{T: UintTy, Size: bits})
	}
	u, overflow := uint256.FromBig(n)
	if overflow {
		return nil, rangeErr(pos, Type{T: UintTy, Size: bits})
	}
	word := u.Bytes32()
	return word[:], nil
}

// encodeIntWord range-checks n against a signed field of the given bit
// width and returns its two's-complement 32-byte word.
func encodeIntWord(n *big.Int, bits int, pos int) ([]byte, error) {
	if n == nil {
		return nil, rangeErr(pos, Type{T: IntTy, Size: bits})
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	lo := new(big.Int).Neg(limit)
	hi := new(big.Int).Sub(limit, big.NewInt(1))
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, rangeErr(pos, Type{T: IntTy, Size: bits})
	}
	repr := n
	if n.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 256)
		repr = new(big.Int).Add(n, mod)
	}
	u, overflow := uint256.FromBig(repr)
	if overflow {
		return nil, rangeErr(pos, Type{T: IntTy, Size: bits})
	}
	word := u.Bytes32()
	return word[:], nil
}
