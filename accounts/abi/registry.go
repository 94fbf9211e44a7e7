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
	"fmt"
	"io"

	"github.com/vmabi/codec/common"
	"github.com/vmabi/codec/log"
)

// Registry is the Interface Registry (spec §4.5): an immutable,
// concurrency-safe index built once from a Contract Interface Document
// and consulted read-only afterward (spec §5).
type Registry struct {
	Constructor *FunctionDef
	HasFallback bool
	HasReceive  bool

	Functions           map[string]FunctionDef
	FunctionsBySelector map[[4]byte]FunctionDef

	Events        map[string]EventDef
	EventsByTopic map[common.Hash]EventDef

	Errors           map[string]ErrorDef
	ErrorsBySelector map[[4]byte]ErrorDef
}

// entryMarshaling is one element of the JSON interface-document array.
type entryMarshaling struct {
	Type            string               `json:"type"`
	Name            string               `json:"name"`
	Anonymous       bool                 `json:"anonymous"`
	StateMutability string               `json:"stateMutability,omitempty"`
	Inputs          []ArgumentMarshaling `json:"inputs"`
	Outputs         []ArgumentMarshaling `json:"outputs"`
}

// JSON parses a Contract Interface Document (spec §6) from r and builds a
// Registry.
func JSON(r io.Reader) (Registry, error) {
	var entries []entryMarshaling
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return Registry{}, err
	}
	return newRegistry(entries)
}

// UnmarshalJSON implements json.Unmarshaler so a Registry can be decoded
// directly with encoding/json, mirroring the teacher's abi.ABI.
func (reg *Registry) UnmarshalJSON(data []byte) error {
	var entries []entryMarshaling
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	built, err := newRegistry(entries)
	if err != nil {
		return err
	}
	*reg = built
	return nil
}

func newRegistry(entries []entryMarshaling) (Registry, error) {
	reg := Registry{
		Functions:           make(map[string]FunctionDef),
		FunctionsBySelector: make(map[[4]byte]FunctionDef),
		Events:              make(map[string]EventDef),
		EventsByTopic:       make(map[common.Hash]EventDef),
		Errors:              make(map[string]ErrorDef),
		ErrorsBySelector:    make(map[[4]byte]ErrorDef),
	}

	for _, e := range entries {
		inputs, err := toArguments(e.Inputs)
		if err != nil {
			return Registry{}, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		outputs, err := toArguments(e.Outputs)
		if err != nil {
			return Registry{}, fmt.Errorf("entry %q: %w", e.Name, err)
		}

		switch e.Type {
		case "constructor":
			fn := NewFunction("", "", inputs, nil)
			reg.Constructor = &fn
		case "fallback":
			reg.HasFallback = true
		case "receive":
			reg.HasReceive = true
		case "function", "":
			name := ResolveNameConflict(e.Name, func(n string) bool { _, ok := reg.Functions[n]; return ok })
			if name != e.Name {
				log.Debug("abi: resolved function name conflict", "raw", e.Name, "resolved", name)
			}
			fn := NewFunction(name, e.Name, inputs, outputs)
			reg.Functions[name] = fn
			reg.FunctionsBySelector[fn.ID()] = fn
		case "event":
			name := ResolveNameConflict(e.Name, func(n string) bool { _, ok := reg.Events[n]; return ok })
			if name != e.Name {
				log.Debug("abi: resolved event name conflict", "raw", e.Name, "resolved", name)
			}
			ev := NewEventDef(name, e.Name, e.Anonymous, inputs)
			reg.Events[name] = ev
			reg.EventsByTopic[ev.Topic] = ev
		case "error":
			name := ResolveNameConflict(e.Name, func(n string) bool { _, ok := reg.Errors[n]; return ok })
			if name != e.Name {
				log.Debug("abi: resolved error name conflict", "raw", e.Name, "resolved", name)
			}
			er := NewErrorDef(name, e.Name, inputs)
			reg.Errors[name] = er
			reg.ErrorsBySelector[er.ID()] = er
		default:
			return Registry{}, fmt.Errorf("%wunknown interface-document entry type %q", ErrInvalidType, e.Type)
		}
	}
	return reg, nil
}

func toArguments(ms []ArgumentMarshaling) (Arguments, error) {
	out := make(Arguments, len(ms))
	for i, m := range ms {
		t, err := NewType(m.Type, m.Components)
		if err != nil {
			return nil, err
		}
		out[i] = Argument{Name: m.Name, Type: t, Indexed: m.Indexed}
	}
	return out, nil
}

// MethodByID looks up a function by its 4-byte selector (spec §4.5).
func (reg Registry) MethodByID(id [4]byte) (FunctionDef, bool) {
	fn, ok := reg.FunctionsBySelector[id]
	return fn, ok
}

// EventByTopic looks up an event by its 32-byte topic hash.
func (reg Registry) EventByTopic(topic common.Hash) (EventDef, bool) {
	ev, ok := reg.EventsByTopic[topic]
	return ev, ok
}

// ErrorByID looks up a custom error by its 4-byte selector.
func (reg Registry) ErrorByID(id [4]byte) (ErrorDef, bool) {
	er, ok := reg.ErrorsBySelector[id]
	return er, ok
}

// EncodeFunction implements "encode_function": selector || EncodeParams(inputs, args).
func (reg Registry) EncodeFunction(name string, args ...*Value) ([]byte, error) {
	fn, ok := reg.Functions[name]
	if !ok {
		return nil, fmt.Errorf("%w%q", ErrUnknownFunction, name)
	}
	body, err := fn.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", name, err)
	}
	id := fn.ID()
	return append(id[:], body...), nil
}

// FunctionSelector implements "function_selector": look up a function's
// 4-byte selector (computed when the registry was built) by name.
func (reg Registry) FunctionSelector(name string) ([4]byte, error) {
	fn, ok := reg.Functions[name]
	if !ok {
		return [4]byte{}, fmt.Errorf("%w%q", ErrUnknownFunction, name)
	}
	return fn.ID(), nil
}

// EventTopic implements "event_topic": look up an event's topic hash by name.
func (reg Registry) EventTopic(name string) (common.Hash, error) {
	ev, ok := reg.Events[name]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w%q", ErrUnknownEvent, name)
	}
	return ev.Topic, nil
}

// DecodeFunction implements "decode_function(name, call_data)" (spec §6):
// looks up the named function, verifies call_data's leading 4 bytes match
// that function's own selector, and decodes the remainder against its
// inputs. A mismatched selector reports ErrSelectorMismatch rather than
// ErrUnknownFunction — the name was recognized, the payload just isn't a
// call to it.
func (reg Registry) DecodeFunction(name string, callData []byte) (FunctionDef, []*Value, error) {
	fn, ok := reg.Functions[name]
	if !ok {
		return FunctionDef{}, nil, fmt.Errorf("%w%q", ErrUnknownFunction, name)
	}
	if len(callData) < 4 {
		return fn, nil, truncatedErr(4, len(callData))
	}
	var id [4]byte
	copy(id[:], callData[:4])
	if want := fn.ID(); id != want {
		return fn, nil, selectorMismatchErr(want, id)
	}
	values, err := fn.Inputs.Unpack(callData[4:])
	if err != nil {
		return fn, nil, fmt.Errorf("function %s: %w", fn.Name, err)
	}
	return fn, values, nil
}

// DecodeFunctionBySelector resolves the function purely from call_data's
// leading 4-byte selector, with no caller-supplied name. This is not the
// spec's decode_function operation (which is name-keyed and reports
// SelectorMismatch) — it exists for callers, like the CLI's
// decode-function subcommand, that only have a blob of call data and want
// to know what it invokes.
func (reg Registry) DecodeFunctionBySelector(callData []byte) (FunctionDef, []*Value, error) {
	if len(callData) < 4 {
		return FunctionDef{}, nil, truncatedErr(4, len(callData))
	}
	var id [4]byte
	copy(id[:], callData[:4])
	fn, ok := reg.MethodByID(id)
	if !ok {
		return FunctionDef{}, nil, fmt.Errorf("%wselector %x", ErrUnknownFunction, id)
	}
	values, err := fn.Inputs.Unpack(callData[4:])
	if err != nil {
		return fn, nil, fmt.Errorf("function %s: %w", fn.Name, err)
	}
	return fn, values, nil
}

// DecodeFunctionResult implements "decode_function_result": decodes a
// call's return data against a named function's outputs.
func (reg Registry) DecodeFunctionResult(name string, data []byte) ([]*Value, error) {
	fn, ok := reg.Functions[name]
	if !ok {
		return nil, fmt.Errorf("%w%q", ErrUnknownFunction, name)
	}
	values, err := fn.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("function %s outputs: %w", name, err)
	}
	return values, nil
}

// EncodeParamStrings implements "encode_params": encode a bare list of values
// against a bare list of type strings, with no function/selector context.
func EncodeParamStrings(typeStrings []string, values []*Value) ([]byte, error) {
	types := make([]Type, len(typeStrings))
	for i, ts := range typeStrings {
		t, err := ParseType(ts)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return EncodeParams(types, values)
}

// DecodeLog implements "decode_log" against a resolved event, dispatched
// by the first topic only. It takes no event name: a log whose first
// topic is not a registered event topic (an anonymous event's log, for
// one) yields ErrUnknownEvent, and the caller must look up the EventDef
// itself and pass it to the package-level DecodeLog.
func (reg Registry) DecodeLog(topics []common.Hash, data []byte) (EventDef, map[string]*Value, error) {
	if len(topics) == 0 {
		return EventDef{}, nil, fmt.Errorf("%wno topics present", ErrUnknownEvent)
	}
	ev, ok := reg.EventByTopic(topics[0])
	if !ok {
		return EventDef{}, nil, fmt.Errorf("%wtopic %s", ErrUnknownEvent, topics[0].Hex())
	}
	m, err := DecodeLog(ev, topics, data)
	if err != nil {
		return ev, nil, err
	}
	return ev, m, nil
}
