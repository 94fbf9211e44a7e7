// Copyright 2014 The go-ethereum Authors
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

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmabi/codec/common"
)

func TestKeccak256KnownVector(t *testing.T) {
	// keccak256("") is a widely published test vector.
	got := Keccak256([]byte{})
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", common.Encode(got)[2:])
}

func TestKeccak256HashConcatenates(t *testing.T) {
	whole := Keccak256([]byte("hello"), []byte("world"))
	parts := Keccak256Hash([]byte("hello"), []byte("world"))
	require.Equal(t, whole, parts.Bytes())
}

func TestNewKeccakStateRead(t *testing.T) {
	st := NewKeccakState()
	st.Write([]byte("abi"))
	out := make([]byte, 32)
	n, err := st.Read(out)
	require.NoError(t, err)
	require.Equal(t, 32, n)
}
