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

	"github.com/vmabi/codec/common"
)

// Value is the reflection-free carrier for a decoded or to-be-encoded ABI
// parameter, matching the Value Model (spec §3). Exactly one field group
// is meaningful, selected by T.
type Value struct {
	T byteKind

	Num  *big.Int // UintTy, IntTy
	Bool bool
	Addr common.Address
	FB   []byte // FixedBytesTy, exactly Size bytes
	B    []byte // BytesTy
	Str  string // StringTy

	List  []*Value // ArrayTy, SliceTy
	Tuple []*Value // TupleTy, ordered to match Type.TupleElems
}

func NewUintValue(n *big.Int) *Value           { return &Value{T: UintTy, Num: n} }
func NewIntValue(n *big.Int) *Value            { return &Value{T: IntTy, Num: n} }
func NewBoolValue(b bool) *Value               { return &Value{T: BoolTy, Bool: b} }
func NewAddressValue(a common.Address) *Value  { return &Value{T: AddressTy, Addr: a} }
func NewFixedBytesValue(b []byte) *Value       { return &Value{T: FixedBytesTy, FB: b} }
func NewBytesValue(b []byte) *Value            { return &Value{T: BytesTy, B: b} }
func NewStringValue(s string) *Value           { return &Value{T: StringTy, Str: s} }

func NewArrayValue(elems []*Value) *Value  { return &Value{T: ArrayTy, List: elems} }
func NewSliceValue(elems []*Value) *Value  { return &Value{T: SliceTy, List: elems} }
func NewTupleValue(fields []*Value) *Value { return &Value{T: TupleTy, Tuple: fields} }

// checkKind reports a TypeMismatch when v's tag doesn't fit t's kind. Both
// UintTy and IntTy carry a *big.Int in Num, so the pair is treated as one
// numeric family and the sign is enforced separately during encoding.
func checkKind(t Type, v *Value, pos int) error {
	if v == nil {
		return typeMismatchErr(pos, t, 0xff)
	}
	switch t.T {
	case UintTy, IntTy:
		if v.T != UintTy && v.T != IntTy {
			return typeMismatchErr(pos, t, v.T)
		}
		if v.Num == nil {
			return typeMismatchErr(pos, t, v.T)
		}
	case ArrayTy:
		if v.T != ArrayTy && v.T != SliceTy {
			return typeMismatchErr(pos, t, v.T)
		}
		if len(v.List) != t.Size {
			return fmt.Errorf("%wargument %d: expected %d elements, got %d", ErrArityMismatch, pos, t.Size, len(v.List))
		}
	case SliceTy:
		if v.T != ArrayTy && v.T != SliceTy {
			return typeMismatchErr(pos, t, v.T)
		}
	case TupleTy:
		if v.T != TupleTy {
			return typeMismatchErr(pos, t, v.T)
		}
		if len(v.Tuple) != len(t.TupleElems) {
			return fmt.Errorf("%wargument %d: expected %d fields, got %d", ErrArityMismatch, pos, len(t.TupleElems), len(v.Tuple))
		}
	default:
		if v.T != t.T {
			return typeMismatchErr(pos, t, v.T)
		}
	}
	return nil
}

// String renders a debug representation; not used on any wire path.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.T {
	case UintTy, IntTy:
		return v.Num.String()
	case BoolTy:
		return fmt.Sprintf("%v", v.Bool)
	case AddressTy:
		return v.Addr.Hex()
	case FixedBytesTy:
		return common.Encode(v.FB)
	case BytesTy:
		return common.Encode(v.B)
	case StringTy:
		return v.Str
	case ArrayTy, SliceTy:
		return fmt.Sprintf("%v", v.List)
	case TupleTy:
		return fmt.Sprintf("%v", v.Tuple)
	default:
		return "<invalid>"
	}
}
