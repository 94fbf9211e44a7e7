// Copyright 2016 The go-ethereum Authors
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
	"github.com/vmabi/codec/common"
	"github.com/vmabi/codec/crypto"
)

// EventDef is a resolved event entry: name, ordered (possibly indexed)
// inputs and its cached 32-byte topic hash.
type EventDef struct {
	Name      string
	RawName   string
	Anonymous bool
	Inputs    Arguments

	sig   string
	Topic common.Hash
}

// NewEventDef builds an EventDef and computes its topic hash eagerly.
func NewEventDef(name, rawName string, anonymous bool, inputs Arguments) EventDef {
	sig := FunctionSignature(rawName, inputs)
	return EventDef{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		sig:       sig,
		Topic:     crypto.Keccak256Hash([]byte(sig)),
	}
}

// Sig returns the canonical "name(type1,type2)" signature.
func (e EventDef) Sig() string { return e.sig }

// Indexed returns the ordered indexed-only subset of Inputs.
func (e EventDef) Indexed() Arguments {
	out := make(Arguments, 0, len(e.Inputs))
	for _, a := range e.Inputs {
		if a.Indexed {
			out = append(out, a)
		}
	}
	return out
}
