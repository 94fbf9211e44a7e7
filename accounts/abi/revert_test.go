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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmabi/codec/common"
)

func TestDecodeRevertError(t *testing.T) {
	id := revertErrorFn.ID()
	require.Equal(t, "0x08c379a0", common.Encode(id[:]))

	body, err := revertErrorFn.Inputs.Pack(NewStringValue("insufficient funds"))
	require.NoError(t, err)
	payload := append(id[:], body...)

	reason, err := DecodeRevert(payload)
	require.NoError(t, err)
	require.Equal(t, "insufficient funds", reason)
}

func TestDecodeRevertPanic(t *testing.T) {
	id := revertPanicFn.ID()
	require.Equal(t, "0x4e487b71", common.Encode(id[:]))

	body, err := revertPanicFn.Inputs.Pack(NewUintValue(big.NewInt(0x11)))
	require.NoError(t, err)
	payload := append(id[:], body...)

	reason, err := DecodeRevert(payload)
	require.NoError(t, err)
	require.Equal(t, "arithmetic underflow or overflow", reason)
}

func TestDecodeRevertUnknownSelector(t *testing.T) {
	_, err := DecodeRevert([]byte{0x01, 0x02, 0x03, 0x04})
	require.ErrorIs(t, err, ErrUnknownRevertSelector)
}
