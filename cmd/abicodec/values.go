// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/vmabi/codec/accounts/abi"
	"github.com/vmabi/codec/common"
)

// valueFromText converts a single positional command-line argument into
// an abi.Value of the shape t expects. Composite types (arrays, tuples)
// are not accepted from the command line; use encode_params through a
// scripted caller for those.
func valueFromText(t abi.Type, text string) (*abi.Value, error) {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(strings.TrimSpace(text), 0)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as an integer", text)
		}
		if t.T == abi.UintTy {
			return abi.NewUintValue(n), nil
		}
		return abi.NewIntValue(n), nil
	case abi.BoolTy:
		switch text {
		case "true":
			return abi.NewBoolValue(true), nil
		case "false":
			return abi.NewBoolValue(false), nil
		default:
			return nil, fmt.Errorf("cannot parse %q as a bool", text)
		}
	case abi.AddressTy:
		return abi.NewAddressValue(common.HexToAddress(text)), nil
	case abi.BytesTy:
		return abi.NewBytesValue(common.FromHex(text)), nil
	case abi.FixedBytesTy:
		b := common.FromHex(text)
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes for %s, got %d", t.Size, t, len(b))
		}
		return abi.NewFixedBytesValue(b), nil
	case abi.StringTy:
		return abi.NewStringValue(text), nil
	default:
		return nil, fmt.Errorf("type %s is not supported from the command line; use a scripted caller", t)
	}
}

func loadRegistry(path string) (abi.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return abi.Registry{}, err
	}
	defer f.Close()
	return abi.JSON(f)
}
