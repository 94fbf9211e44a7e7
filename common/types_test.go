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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToAddress(t *testing.T) {
	a := HexToAddress("0x00112233445566778899aabbccddeeff00112233")
	require.Equal(t, "0x00112233445566778899aabbccddeeff00112233", a.Hex())
}

func TestHexToAddressWithoutPrefix(t *testing.T) {
	a := HexToAddress("00112233445566778899aabbccddeeff00112233")
	require.Equal(t, "0x00112233445566778899aabbccddeeff00112233", a.Hex())
}

func TestBytesToAddressPadsAndTruncates(t *testing.T) {
	short := BytesToAddress([]byte{0x01, 0x02})
	require.Equal(t, "0x0000000000000000000000000000000000000102", short.Hex())

	long := BytesToAddress(append(make([]byte, 5), bytesOfLen(AddressLength)...))
	require.Len(t, long.Bytes(), AddressLength)
}

func bytesOfLen(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestFromHexTolerance(t *testing.T) {
	require.Equal(t, []byte{0x0a, 0xbc}, FromHex("0xabc"))
	require.Equal(t, []byte{0xab, 0xcd}, FromHex("abcd"))
	require.Nil(t, FromHex("zz"))
}

func TestIsHex(t *testing.T) {
	require.True(t, IsHex("0xabcd"))
	require.True(t, IsHex(""))
	require.False(t, IsHex("0xabc")) // odd length
	require.False(t, IsHex("xyz"))
}

func TestPadBytesDoNotMutateInput(t *testing.T) {
	in := []byte{0x01}
	out := LeftPadBytes(in, 4)
	out[0] = 0xff
	require.Equal(t, byte(0x01), in[0])
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, RightPadBytes(in, 4))
}
