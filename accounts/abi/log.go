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

// DecodeLog implements the Log Decoder (spec §4.6): given an event
// definition and a raw log's topics/data, it splits indexed from
// non-indexed inputs, decodes the non-indexed half out of data with the
// ordinary Decoder, decodes static indexed params directly out of their
// topic word, and returns everything merged into one name -> Value map
// keyed by argument name (fieldN for blank names, N being the argument's
// position in event.Inputs).
//
// An indexed parameter of dynamic type (string, bytes, dynamic array, or
// any tuple containing one) cannot be recovered from its topic: Solidity
// only ever stores the parameter's keccak-256 preimage there. Such values
// decode to a FixedBytesTy Value carrying that 32-byte hash verbatim,
// not the original data.
func DecodeLog(event EventDef, topics []common.Hash, data []byte) (map[string]*Value, error) {
	indexed := event.Indexed()
	wantTopics := len(indexed)
	if !event.Anonymous {
		wantTopics++ // topics[0] is the event's own signature hash
	}
	if len(topics) != wantTopics {
		return nil, topicCountErr(wantTopics, len(topics))
	}
	topicWords := topics
	if !event.Anonymous {
		topicWords = topics[1:]
	}

	nonIndexed := event.Inputs.NonIndexed()
	values, err := nonIndexed.Unpack(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Value, len(event.Inputs))

	// Synthetic names for blank arguments are keyed by position within
	// event.Inputs as a whole, not within the indexed/non-indexed
	// partition, so an unnamed indexed argument and an unnamed
	// non-indexed argument never both resolve to "field0".
	topicIdx, valueIdx := 0, 0
	for pos, arg := range event.Inputs {
		if arg.Indexed {
			word := topicWords[topicIdx]
			topicIdx++
			if arg.Type.IsDynamic() {
				fb := make([]byte, 32)
				copy(fb, word.Bytes())
				out[nonBlankName(arg.Name, pos)] = NewFixedBytesValue(fb)
				continue
			}
			v, err := decodeStatic(arg.Type, word.Bytes(), pos)
			if err != nil {
				return nil, err
			}
			out[nonBlankName(arg.Name, pos)] = v
			continue
		}
		out[nonBlankName(arg.Name, pos)] = values[valueIdx]
		valueIdx++
	}
	return out, nil
}

func nonBlankName(name string, i int) string {
	if name == "" {
		return syntheticFieldName(i)
	}
	return name
}

// MakeTopic computes the topic word for one indexed argument's value, as
// used when constructing a filter (the reverse direction of DecodeLog).
// Static types encode to their ordinary 32-byte word; dynamic types
// encode to the keccak-256 hash of their ABI-encoded dynamic payload.
func MakeTopic(t Type, v *Value) (common.Hash, error) {
	if !t.IsDynamic() {
		word, err := encodeStatic(t, v, 0)
		if err != nil {
			return common.Hash{}, err
		}
		return common.BytesToHash(word), nil
	}
	enc, err := encodeDynamicPreimage(t, v)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

// encodeDynamicPreimage returns the bytes MakeTopic hashes for a dynamic
// indexed argument: the raw, unpadded bytes for bytes/string; for arrays
// and tuples, the same self-contained blob encodeDynamic places in a tail
// (a dynamic array's blob starts with its length word), with no offset
// word in front of it.
func encodeDynamicPreimage(t Type, v *Value) ([]byte, error) {
	switch t.T {
	case BytesTy:
		return v.B, nil
	case StringTy:
		return []byte(v.Str), nil
	default:
		return encodeDynamic(t, v, 0)
	}
}
