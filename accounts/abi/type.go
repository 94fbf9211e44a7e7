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
	"fmt"
	"strconv"
	"strings"
)

// Type enumerator. Unlike the upstream go-ethereum package, this is a
// closed tagged variant with no reflection: every case is matched
// exhaustively by the encoder, decoder and type checker.
type byteKind = byte

const (
	UintTy byteKind = iota
	IntTy
	BoolTy
	AddressTy
	FixedBytesTy
	BytesTy
	StringTy
	ArrayTy  // fixed-size array, T[n]
	SliceTy  // dynamic-size array, T[]
	TupleTy
)

// TupleField is one named member of a Tuple type.
type TupleField struct {
	Name string
	Type Type
}

// Type is the reflection-free representation of a single ABI parameter
// type, per the Type Model (spec §3).
type Type struct {
	T    byteKind
	Size int   // bit width for Uint/Int, byte count for FixedBytes, length for ArrayTy
	Elem *Type // element type for ArrayTy/SliceTy

	TupleRawName string
	TupleElems   []TupleField

	stringKind string // cached canonical() rendering
}

// IsDynamic reports whether t is a dynamic type under invariant D1.
func (t Type) IsDynamic() bool {
	switch t.T {
	case BytesTy, StringTy, SliceTy:
		return true
	case ArrayTy:
		return t.Elem.IsDynamic()
	case TupleTy:
		for _, f := range t.TupleElems {
			if f.Type.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headWidth returns the number of bytes t occupies in a head: 32 for
// dynamic types (an offset slot) or for any 32-byte atomic, and the full
// inline size for static composite types (spec §4.3 step 1).
func (t Type) headWidth() int {
	if t.IsDynamic() {
		return 32
	}
	switch t.T {
	case ArrayTy:
		return t.Size * t.Elem.headWidth()
	case TupleTy:
		total := 0
		for _, f := range t.TupleElems {
			total += f.Type.headWidth()
		}
		return total
	default:
		return 32
	}
}

// String implements fmt.Stringer, returning the canonical signature form.
func (t Type) String() string {
	if t.stringKind != "" {
		return t.stringKind
	}
	return t.canonical()
}

// canonical renders t's canonical signature string (spec §4.1), ignoring
// tuple field names.
func (t Type) canonical() string {
	switch t.T {
	case UintTy:
		return fmt.Sprintf("uint%d", t.Size)
	case IntTy:
		return fmt.Sprintf("int%d", t.Size)
	case BoolTy:
		return "bool"
	case AddressTy:
		return "address"
	case FixedBytesTy:
		return fmt.Sprintf("bytes%d", t.Size)
	case BytesTy:
		return "bytes"
	case StringTy:
		return "string"
	case ArrayTy:
		return fmt.Sprintf("%s[%d]", t.Elem.canonical(), t.Size)
	case SliceTy:
		return fmt.Sprintf("%s[]", t.Elem.canonical())
	case TupleTy:
		parts := make([]string, len(t.TupleElems))
		for i, f := range t.TupleElems {
			parts[i] = f.Type.canonical()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "<invalid>"
	}
}

// NewType constructs a Type from a JSON interface-document entry: a base
// type string (possibly array-suffixed) and, for tuples, an ordered list
// of named field descriptors. This is the entry point used while parsing
// a Contract Interface Document (spec §6), where components already
// arrive pre-split by the document's own JSON structure.
func NewType(t string, components []ArgumentMarshaling) (Type, error) {
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("%winvalid arg type %q: unmatched array brackets", ErrInvalidType, t)
	}
	if i := strings.LastIndex(t, "["); i != -1 && !strings.HasPrefix(t, "[") {
		// Recurse into the element type, then attach the trailing [n] or [].
		base := t[:i]
		suffix := t[i:]
		var elemComponents []ArgumentMarshaling
		if base == "tuple" {
			elemComponents = components
		}
		elem, err := NewType(base, elemComponents)
		if err != nil {
			return Type{}, err
		}
		return newArrayType(elem, suffix)
	}

	if t == "tuple" {
		return newTupleType(components)
	}
	return parseAtomic(t)
}

// newArrayType wraps elem with the array/slice suffix "[n]" or "[]".
func newArrayType(elem Type, suffix string) (Type, error) {
	inner := suffix[1 : len(suffix)-1]
	if inner == "" {
		return Type{T: SliceTy, Elem: &elem, stringKind: elem.String() + "[]"}, nil
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return Type{}, fmt.Errorf("%winvalid array length %q", ErrInvalidType, inner)
	}
	return Type{T: ArrayTy, Size: n, Elem: &elem, stringKind: fmt.Sprintf("%s[%d]", elem.String(), n)}, nil
}

func newTupleType(components []ArgumentMarshaling) (Type, error) {
	fields := make([]TupleField, len(components))
	names := make([]string, len(components))
	for i, c := range components {
		ct, err := NewType(c.Type, c.Components)
		if err != nil {
			return Type{}, err
		}
		fields[i] = TupleField{Name: c.Name, Type: ct}
		names[i] = ct.String()
	}
	return Type{T: TupleTy, TupleElems: fields, stringKind: "(" + strings.Join(names, ",") + ")"}, nil
}

// parseAtomic parses a single, non-array, non-tuple base type token such
// as "uint256", "bytes32", "address". The token must be bare: a trailing
// field name is rejected here, so callers strip any name first.
func parseAtomic(t string) (Type, error) {
	switch {
	case t == "uint" || t == "uint256":
		return Type{T: UintTy, Size: 256, stringKind: "uint256"}, nil
	case t == "int" || t == "int256":
		return Type{T: IntTy, Size: 256, stringKind: "int256"}, nil
	case t == "bool":
		return Type{T: BoolTy, stringKind: "bool"}, nil
	case t == "address":
		return Type{T: AddressTy, stringKind: "address"}, nil
	case t == "string":
		return Type{T: StringTy, stringKind: "string"}, nil
	case t == "bytes":
		return Type{T: BytesTy, stringKind: "bytes"}, nil
	case strings.HasPrefix(t, "uint"):
		bits, err := strconv.Atoi(t[4:])
		if err != nil || !validIntWidth(bits) {
			return Type{}, fmt.Errorf("%wunsupported uint width in %q", ErrInvalidType, t)
		}
		return Type{T: UintTy, Size: bits, stringKind: t}, nil
	case strings.HasPrefix(t, "int"):
		bits, err := strconv.Atoi(t[3:])
		if err != nil || !validIntWidth(bits) {
			return Type{}, fmt.Errorf("%wunsupported int width in %q", ErrInvalidType, t)
		}
		return Type{T: IntTy, Size: bits, stringKind: t}, nil
	case strings.HasPrefix(t, "bytes"):
		n, err := strconv.Atoi(t[5:])
		if err != nil || n < 1 || n > 32 {
			return Type{}, fmt.Errorf("%wunsupported fixed-bytes width in %q", ErrInvalidType, t)
		}
		return Type{T: FixedBytesTy, Size: n, stringKind: t}, nil
	default:
		return Type{}, fmt.Errorf("%wunknown base type %q", ErrInvalidType, t)
	}
}

func validIntWidth(bits int) bool {
	return bits > 0 && bits <= 256 && bits%8 == 0
}

// ParseType parses a canonical (or human-annotated) type string in a
// single left-to-right pass, tracking paren depth so commas inside nested
// tuples never split a top-level field (spec §4.1). Unlike NewType, tuple
// members are written inline as "(uint256 amount,address to)" rather than
// arriving as a separate components list; per-field names are optional
// and preserved on the returned Type but ignored by canonical().
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	t, rest, err := parseTypeExpr(s)
	if err != nil {
		return Type{}, err
	}
	rest = strings.TrimSpace(rest)
	if rest != "" {
		return Type{}, fmt.Errorf("%wunexpected trailing input %q", ErrInvalidType, rest)
	}
	return t, nil
}

// parseTypeExpr parses one type (tuple-or-atomic) followed by any number
// of array suffixes, and returns what's left unconsumed.
func parseTypeExpr(s string) (Type, string, error) {
	var base Type
	var err error
	if strings.HasPrefix(s, "(") {
		base, s, err = parseTupleExpr(s)
	} else {
		base, s, err = parseAtomicToken(s)
	}
	if err != nil {
		return Type{}, "", err
	}
	for strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end == -1 {
			return Type{}, "", fmt.Errorf("%wunmatched '[' in type", ErrInvalidType)
		}
		suffix := s[:end+1]
		s = s[end+1:]
		base, err = newArrayType(base, suffix)
		if err != nil {
			return Type{}, "", err
		}
	}
	return base, s, nil
}

// parseTupleExpr parses "(T1 n1,T2 n2,...)" tracking bracket depth so
// nested tuples' commas don't split the outer field list.
func parseTupleExpr(s string) (Type, string, error) {
	if !strings.HasPrefix(s, "(") {
		return Type{}, "", fmt.Errorf("%wexpected '(' to start tuple", ErrInvalidType)
	}
	depth := 0
	i := 0
	closed := false
scan:
	for ; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				i++
				closed = true
				break scan
			}
		}
	}
	if !closed {
		return Type{}, "", fmt.Errorf("%wunmatched '(' in tuple", ErrInvalidType)
	}
	inner := s[1 : i-1]
	rest := s[i:]

	fields, err := splitTupleFields(inner)
	if err != nil {
		return Type{}, "", err
	}
	tupleFields := make([]TupleField, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		ft, name, err := parseNamedField(f)
		if err != nil {
			return Type{}, "", err
		}
		tupleFields = append(tupleFields, TupleField{Name: name, Type: ft})
	}
	names := make([]string, len(tupleFields))
	for i, f := range tupleFields {
		names[i] = f.Type.String()
	}
	return Type{T: TupleTy, TupleElems: tupleFields, stringKind: "(" + strings.Join(names, ",") + ")"}, rest, nil
}

// splitTupleFields splits a tuple's inner text on top-level commas only.
func splitTupleFields(inner string) ([]string, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, nil
	}
	var fields []string
	depth := 0
	last := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%wunmatched ')' in tuple", ErrInvalidType)
			}
		case ',':
			if depth == 0 {
				fields = append(fields, inner[last:i])
				last = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%wunmatched '(' in tuple", ErrInvalidType)
	}
	fields = append(fields, inner[last:])
	return fields, nil
}

// parseNamedField parses "type [name]", where type may itself be a
// parenthesized tuple with array suffixes.
func parseNamedField(f string) (Type, string, error) {
	f = strings.TrimSpace(f)
	if strings.HasPrefix(f, "(") {
		t, rest, err := parseTypeExpr(f)
		if err != nil {
			return Type{}, "", err
		}
		return t, strings.TrimSpace(rest), nil
	}
	fields := strings.Fields(f)
	if len(fields) == 0 {
		return Type{}, "", fmt.Errorf("%wempty tuple field", ErrInvalidType)
	}
	t, rest, err := parseAtomicWithArray(fields[0])
	if err != nil {
		return Type{}, "", err
	}
	if rest != "" {
		return Type{}, "", fmt.Errorf("%wtrailing input %q after type %q", ErrInvalidType, rest, fields[0])
	}
	name := ""
	if len(fields) > 1 {
		name = fields[len(fields)-1]
	}
	return t, name, nil
}

func parseAtomicWithArray(tok string) (Type, string, error) {
	t, rest, err := parseTypeExpr(tok)
	if err != nil {
		return Type{}, "", err
	}
	return t, rest, nil
}

// parseAtomicToken consumes one atomic base-type token (letters/digits)
// from the front of s and returns the remainder.
func parseAtomicToken(s string) (Type, string, error) {
	i := 0
	for i < len(s) && (isAlphaNum(s[i])) {
		i++
	}
	if i == 0 {
		return Type{}, "", fmt.Errorf("%wexpected a type, got %q", ErrInvalidType, s)
	}
	tok := s[:i]
	t, err := parseAtomic(tok)
	if err != nil {
		return Type{}, "", err
	}
	return t, s[i:], nil
}

func isAlphaNum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
