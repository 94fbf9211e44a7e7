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

// Package abi implements encoding and decoding for a smart-contract-style
// application binary interface: function/event/error selectors, the
// head/tail parameter layout, and a Registry built from a JSON interface
// document.
//
// The type and value models are closed tagged variants rather than a
// reflection-driven mapping onto Go types: Type and Value each carry a
// kind tag and exactly one payload field is meaningful for that kind, and
// every operation switches on the tag. Type and Value have exported
// fields, so a caller can build one with a tag outside the known kinds;
// the encoder and decoder report such a tag as ErrTypeMismatch.
package abi
