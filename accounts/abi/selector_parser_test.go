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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmabi/codec/common"
)

func TestParseSelectorTransfer(t *testing.T) {
	fn, err := ParseSelector("transfer(address,uint256)")
	require.NoError(t, err)
	id := fn.ID()
	require.Equal(t, "0xa9059cbb", common.Encode(id[:]))
	require.Len(t, fn.Inputs, 2)
	require.Equal(t, AddressTy, fn.Inputs[0].Type.T)
	require.Equal(t, UintTy, fn.Inputs[1].Type.T)
}

func TestParseSelectorNoArgs(t *testing.T) {
	fn, err := ParseSelector("totalSupply()")
	require.NoError(t, err)
	require.Empty(t, fn.Inputs)
}

func TestParseSelectorTuple(t *testing.T) {
	fn, err := ParseSelector("execute((address,uint256,bytes))")
	require.NoError(t, err)
	require.Len(t, fn.Inputs, 1)
	require.Equal(t, TupleTy, fn.Inputs[0].Type.T)
}

func TestParseSelectorInvalid(t *testing.T) {
	_, err := ParseSelector("not a signature")
	require.Error(t, err)
}
