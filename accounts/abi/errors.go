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
	"errors"
	"fmt"
)

// Error kind sentinels, one per case in the error taxonomy. Each is
// wrapped with %w so callers can errors.Is against the kind while still
// getting a message that names the offending type and position.
var (
	ErrUnknownFunction       = errors.New("abi: unknown function: ")
	ErrUnknownEvent          = errors.New("abi: unknown event: ")
	ErrSelectorMismatch      = errors.New("abi: selector mismatch: ")
	ErrArityMismatch         = errors.New("abi: arity mismatch: ")
	ErrTypeMismatch          = errors.New("abi: type mismatch: ")
	ErrRangeError            = errors.New("abi: value out of range: ")
	ErrInvalidType           = errors.New("abi: invalid type: ")
	ErrTruncated             = errors.New("abi: truncated data: ")
	ErrInvalidOffset         = errors.New("abi: invalid offset: ")
	ErrInvalidUtf8           = errors.New("abi: invalid utf-8: ")
	ErrTopicCount            = errors.New("abi: topic count mismatch: ")
	ErrUnknownRevertSelector = errors.New("abi: unrecognized revert selector: ")
)

func arityErr(want, got int) error {
	return fmt.Errorf("%wwant %d arguments, got %d", ErrArityMismatch, want, got)
}

func typeMismatchErr(pos int, t Type, gotKind byte) error {
	return fmt.Errorf("%wargument %d: expected %s, got value kind %d", ErrTypeMismatch, pos, t, gotKind)
}

func rangeErr(pos int, t Type) error {
	return fmt.Errorf("%wargument %d: value does not fit in %s", ErrRangeError, pos, t)
}

func truncatedErr(need, have int) error {
	return fmt.Errorf("%wneed %d bytes, have %d", ErrTruncated, need, have)
}

func invalidOffsetErr(offset uint64, length int) error {
	return fmt.Errorf("%woffset %d exceeds buffer length %d", ErrInvalidOffset, offset, length)
}

func selectorMismatchErr(want, got [4]byte) error {
	return fmt.Errorf("%wwant %x, got %x", ErrSelectorMismatch, want, got)
}

func topicCountErr(want, got int) error {
	return fmt.Errorf("%wexpected %d topics, got %d", ErrTopicCount, want, got)
}
