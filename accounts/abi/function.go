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
	"strings"

	"github.com/vmabi/codec/crypto"
)

// FunctionDef is a resolved function entry from an interface document:
// name, ordered inputs/outputs and its cached 4-byte selector.
type FunctionDef struct {
	Name    string
	RawName string
	Inputs  Arguments
	Outputs Arguments

	sig string
	id  [4]byte
}

// NewFunction builds a FunctionDef and computes its selector eagerly, the
// way the teacher's NewEvent computes its topic eagerly (spec §4.2:
// selectors are pure functions of the canonical signature).
func NewFunction(name, rawName string, inputs, outputs Arguments) FunctionDef {
	sig := FunctionSignature(rawName, inputs)
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(sig))[:4])
	return FunctionDef{Name: name, RawName: rawName, Inputs: inputs, Outputs: outputs, sig: sig, id: id}
}

// Sig returns the canonical "name(type1,type2)" signature.
func (f FunctionDef) Sig() string { return f.sig }

// ID returns the 4-byte selector.
func (f FunctionDef) ID() [4]byte { return f.id }

// FunctionSignature renders the canonical signature string for name with
// the given (non-indexed, since functions have no indexed inputs) inputs.
func FunctionSignature(name string, inputs Arguments) string {
	types := make([]string, len(inputs))
	for i, a := range inputs {
		types[i] = a.Type.String()
	}
	return name + "(" + strings.Join(types, ",") + ")"
}
