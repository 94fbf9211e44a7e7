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
	"fmt"

	"github.com/vmabi/codec/common"
)

// Log is the minimal shape of an emitted event log this module needs to
// decode one: an emitting address, its topic words and opaque data.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Receipt is the minimal shape of a transaction receipt this module
// needs to walk: an ordered list of logs.
type Receipt struct {
	Logs []Log
}

// DecodedLog pairs a raw Log with its resolved event and decoded fields.
type DecodedLog struct {
	Log   Log
	Event EventDef
	Args  map[string]*Value
}

// DecodeReceiptLogs implements the Receipt Helpers component (spec §4.7):
// a thin facade over DecodeLog that walks every log in a receipt,
// decodes the ones whose topic[0] resolves against reg, and silently
// skips logs from contracts the registry doesn't describe (an unknown
// topic[0] is not an error here; it simply isn't this interface's event).
func DecodeReceiptLogs(reg Registry, receipt Receipt) ([]DecodedLog, error) {
	var out []DecodedLog
	for _, lg := range receipt.Logs {
		if len(lg.Topics) == 0 {
			continue
		}
		ev, ok := reg.EventByTopic(lg.Topics[0])
		if !ok {
			continue
		}
		args, err := DecodeLog(ev, lg.Topics, lg.Data)
		if err != nil {
			return out, err
		}
		out = append(out, DecodedLog{Log: lg, Event: ev, Args: args})
	}
	return out, nil
}

// FilterLogsByEvent returns the subset of receipt.Logs whose topic[0]
// matches the named event in reg, decoded. Unlike DecodeReceiptLogs this
// errors if the name isn't registered, since the caller named it
// explicitly.
func FilterLogsByEvent(reg Registry, receipt Receipt, eventName string) ([]DecodedLog, error) {
	ev, ok := reg.Events[eventName]
	if !ok {
		return nil, fmt.Errorf("%w%q", ErrUnknownEvent, eventName)
	}
	var out []DecodedLog
	for _, lg := range receipt.Logs {
		if len(lg.Topics) == 0 || lg.Topics[0] != ev.Topic {
			continue
		}
		args, err := DecodeLog(ev, lg.Topics, lg.Data)
		if err != nil {
			return out, err
		}
		out = append(out, DecodedLog{Log: lg, Event: ev, Args: args})
	}
	return out, nil
}
