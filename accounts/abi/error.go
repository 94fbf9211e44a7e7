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

	"github.com/vmabi/codec/crypto"
)

// ErrorDef is a resolved custom-error entry (a supplemented feature: a
// Solidity `error Foo(uint256)` declaration). It mirrors FunctionDef in
// every respect except that it has no outputs and never appears as a
// call target, only as revert payload.
type ErrorDef struct {
	Name    string
	RawName string
	Inputs  Arguments

	sig string
	id  [4]byte
}

// NewErrorDef builds an ErrorDef and computes its 4-byte selector eagerly.
func NewErrorDef(name, rawName string, inputs Arguments) ErrorDef {
	sig := FunctionSignature(rawName, inputs)
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(sig))[:4])
	return ErrorDef{Name: name, RawName: rawName, Inputs: inputs, sig: sig, id: id}
}

func (e ErrorDef) Sig() string { return e.sig }
func (e ErrorDef) ID() [4]byte { return e.id }

// Unpack decodes a revert payload against e's inputs, returning a
// name -> Value map. data must start with e's 4-byte selector, which is
// checked (ErrSelectorMismatch otherwise) and stripped before decoding.
func (e ErrorDef) Unpack(data []byte) (map[string]*Value, error) {
	if len(data) < 4 {
		return nil, truncatedErr(4, len(data))
	}
	var got [4]byte
	copy(got[:], data[:4])
	if got != e.id {
		return nil, selectorMismatchErr(e.id, got)
	}
	m, err := e.Inputs.UnpackIntoMap(data[4:])
	if err != nil {
		return nil, fmt.Errorf("error %s: %w", e.Name, err)
	}
	return m, nil
}
