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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTypeAtomics(t *testing.T) {
	cases := map[string]byteKind{
		"uint256": UintTy,
		"uint8":   UintTy,
		"int256":  IntTy,
		"int32":   IntTy,
		"bool":    BoolTy,
		"address": AddressTy,
		"bytes32": FixedBytesTy,
		"bytes":   BytesTy,
		"string":  StringTy,
	}
	for s, want := range cases {
		ty, err := ParseType(s)
		require.NoError(t, err, s)
		require.Equal(t, want, ty.T, s)
		require.Equal(t, s, ty.String())
	}
}

func TestParseTypeArrays(t *testing.T) {
	ty, err := ParseType("uint256[3]")
	require.NoError(t, err)
	require.Equal(t, ArrayTy, ty.T)
	require.Equal(t, 3, ty.Size)
	require.Equal(t, UintTy, ty.Elem.T)

	ty, err = ParseType("address[]")
	require.NoError(t, err)
	require.Equal(t, SliceTy, ty.T)
	require.Equal(t, AddressTy, ty.Elem.T)

	ty, err = ParseType("uint256[2][]")
	require.NoError(t, err)
	require.Equal(t, SliceTy, ty.T)
	require.Equal(t, ArrayTy, ty.Elem.T)
	require.Equal(t, 2, ty.Elem.Size)
}

func TestParseTypeTuples(t *testing.T) {
	ty, err := ParseType("(uint256 amount,address to)")
	require.NoError(t, err)
	require.Equal(t, TupleTy, ty.T)
	require.Len(t, ty.TupleElems, 2)
	require.Equal(t, "amount", ty.TupleElems[0].Name)
	require.Equal(t, UintTy, ty.TupleElems[0].Type.T)
	require.Equal(t, "to", ty.TupleElems[1].Name)
	require.Equal(t, "(uint256,address)", ty.String())
}

func TestParseTypeNestedTuple(t *testing.T) {
	ty, err := ParseType("(uint256,(bool,string)[],bytes4)")
	require.NoError(t, err)
	require.Equal(t, TupleTy, ty.T)
	require.Len(t, ty.TupleElems, 3)
	require.Equal(t, SliceTy, ty.TupleElems[1].Type.T)
	require.Equal(t, TupleTy, ty.TupleElems[1].Type.Elem.T)
	require.Equal(t, "(uint256,(bool,string)[],bytes4)", ty.String())
}

func TestIsDynamic(t *testing.T) {
	dynamic := []string{"bytes", "string", "uint256[]", "(uint256,string)", "(uint256,bool)[3]"}
	for _, s := range dynamic {
		ty, err := ParseType(s)
		require.NoError(t, err, s)
		require.True(t, ty.IsDynamic(), s)
	}
	static := []string{"uint256", "address", "bool", "bytes32", "uint256[3]", "(uint256,bool)", "(uint256,bool)[2]", "(uint256,bool)[3]"}
	for _, s := range static {
		ty, err := ParseType(s)
		require.NoError(t, err, s)
		require.False(t, ty.IsDynamic(), s)
	}
}

func TestNewTypeFromComponents(t *testing.T) {
	ty, err := NewType("tuple", []ArgumentMarshaling{
		{Name: "amount", Type: "uint256"},
		{Name: "to", Type: "address"},
	})
	require.NoError(t, err)
	require.Equal(t, TupleTy, ty.T)
	require.Equal(t, "(uint256,address)", ty.String())

	arr, err := NewType("tuple[]", []ArgumentMarshaling{
		{Name: "x", Type: "uint256"},
	})
	require.NoError(t, err)
	require.Equal(t, SliceTy, arr.T)
	require.Equal(t, TupleTy, arr.Elem.T)
}

func TestParseTypeInvalid(t *testing.T) {
	invalid := []string{"", "uint7", "bytes33", "int0", "foo", "uint256[", "(uint256"}
	for _, s := range invalid {
		_, err := ParseType(s)
		require.Error(t, err, s)
	}
}
