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
	"encoding/json"
	"strconv"
)

// Argument is one named, typed member of a function or event's parameter
// list. Indexed is meaningful for event inputs only.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool
}

// Arguments is an ordered parameter list.
type Arguments []Argument

// ArgumentMarshaling is the on-the-wire JSON shape of one parameter in a
// Contract Interface Document (spec §6).
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON turns one JSON argument entry into an Argument.
func (a *Argument) UnmarshalJSON(data []byte) error {
	var m ArgumentMarshaling
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	t, err := NewType(m.Type, m.Components)
	if err != nil {
		return err
	}
	a.Name = m.Name
	a.Type = t
	a.Indexed = m.Indexed
	return nil
}

// NonIndexed returns the subset of args that are not indexed, preserving
// order. For a function's Arguments (never indexed) it returns a copy of
// the same slice.
func (args Arguments) NonIndexed() Arguments {
	out := make(Arguments, 0, len(args))
	for _, a := range args {
		if !a.Indexed {
			out = append(out, a)
		}
	}
	return out
}

// Types returns the ordered Type list, used to drive EncodeParams/DecodeParams.
func (args Arguments) Types() []Type {
	out := make([]Type, len(args))
	for i, a := range args {
		out[i] = a.Type
	}
	return out
}

// Names returns the ordered argument names, synthesizing fieldN for blanks.
func (args Arguments) Names() []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a.Name == "" {
			out[i] = syntheticFieldName(i)
		} else {
			out[i] = a.Name
		}
	}
	return out
}

func syntheticFieldName(i int) string {
	return "field" + strconv.Itoa(i)
}

// Pack encodes values against args, as the non-selector-prefixed half of
// EncodeFunction (spec §4.3).
func (args Arguments) Pack(values ...*Value) ([]byte, error) {
	if len(values) != len(args) {
		return nil, arityErr(len(args), len(values))
	}
	return EncodeParams(args.Types(), values)
}

// Unpack decodes data against args, returning values in argument order.
func (args Arguments) Unpack(data []byte) ([]*Value, error) {
	return DecodeParams(args.Types(), data)
}

// UnpackIntoMap decodes data against args and returns a name -> Value map,
// synthesizing fieldN names for blank ones, matching the teacher's
// UnpackIntoMap façade but without any reflection-based struct binding.
func (args Arguments) UnpackIntoMap(data []byte) (map[string]*Value, error) {
	values, err := args.Unpack(data)
	if err != nil {
		return nil, err
	}
	names := args.Names()
	out := make(map[string]*Value, len(values))
	for i, v := range values {
		out[names[i]] = v
	}
	return out, nil
}

// ResolveNameConflict picks a name for an argument or entry that does not
// collide with anything already registered under used(name)==true. The
// first occurrence of a name keeps it bare; later occurrences get a
// numeric suffix appended, tried in increasing order (spec §4.5).
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	for idx := 0; used(name); idx++ {
		name = rawName + strconv.Itoa(idx)
	}
	return name
}
