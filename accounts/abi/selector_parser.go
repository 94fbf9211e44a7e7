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
	"strings"
)

// ParseSelector accepts a human-typed signature such as
// "transfer(address,uint256)" and returns an equivalent single-function
// FunctionDef, for callers that have a bare signature string rather than
// a full interface document (the CLI's `selector` subcommand, primarily).
func ParseSelector(sig string) (FunctionDef, error) {
	sig = strings.TrimSpace(sig)
	open := strings.IndexByte(sig, '(')
	if open == -1 || !strings.HasSuffix(sig, ")") {
		return FunctionDef{}, fmt.Errorf("%wnot a function signature: %q", ErrInvalidType, sig)
	}
	name := sig[:open]
	if name == "" || !isValidIdentifier(name) {
		return FunctionDef{}, fmt.Errorf("%winvalid function name %q", ErrInvalidType, name)
	}
	fields, err := splitTupleFields(sig[open+1 : len(sig)-1])
	if err != nil {
		return FunctionDef{}, err
	}
	inputs := make(Arguments, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		t, err := ParseType(f)
		if err != nil {
			return FunctionDef{}, err
		}
		inputs = append(inputs, Argument{Name: syntheticFieldName(i), Type: t})
	}
	return NewFunction(name, name, inputs, nil), nil
}

func isValidIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		alnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '$'
		if !alnum {
			return false
		}
	}
	return true
}
