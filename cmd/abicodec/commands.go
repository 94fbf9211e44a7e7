// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vmabi/codec/accounts/abi"
	"github.com/vmabi/codec/common"
)

var interfaceFlag = &cli.StringFlag{
	Name:     "abi",
	Usage:    "path to a JSON interface document",
	Required: true,
}

var encodeFunctionCommand = &cli.Command{
	Name:      "encode-function",
	Usage:     "encode a function call: selector followed by its packed arguments",
	ArgsUsage: "<function-name> [arg...]",
	Flags:     []cli.Flag{interfaceFlag},
	Action: func(ctx *cli.Context) error {
		reg, err := loadRegistry(ctx.String("abi"))
		if err != nil {
			return err
		}
		args := ctx.Args().Slice()
		if len(args) == 0 {
			return fmt.Errorf("missing function name")
		}
		name, rest := args[0], args[1:]
		fn, ok := reg.Functions[name]
		if !ok {
			return fmt.Errorf("%w%q", abi.ErrUnknownFunction, name)
		}
		if len(rest) != len(fn.Inputs) {
			return fmt.Errorf("function %s takes %d arguments, got %d", name, len(fn.Inputs), len(rest))
		}
		values := make([]*abi.Value, len(rest))
		for i, raw := range rest {
			v, err := valueFromText(fn.Inputs[i].Type, raw)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
			values[i] = v
		}
		data, err := reg.EncodeFunction(name, values...)
		if err != nil {
			return err
		}
		fmt.Println(common.Encode(data))
		return nil
	},
}

var decodeFunctionCommand = &cli.Command{
	Name:      "decode-function",
	Usage:     "decode a selector-prefixed call against a known function",
	ArgsUsage: "<hex-data>",
	Flags:     []cli.Flag{interfaceFlag},
	Action: func(ctx *cli.Context) error {
		reg, err := loadRegistry(ctx.String("abi"))
		if err != nil {
			return err
		}
		if ctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one hex-data argument")
		}
		fn, values, err := reg.DecodeFunctionBySelector(common.FromHex(ctx.Args().First()))
		if err != nil {
			return err
		}
		fmt.Printf("function %s\n", fn.Sig())
		names := fn.Inputs.Names()
		for i, v := range values {
			fmt.Printf("  %s = %s\n", names[i], v)
		}
		return nil
	},
}

var decodeLogCommand = &cli.Command{
	Name:      "decode-log",
	Usage:     "decode an event log against a known event",
	ArgsUsage: "<hex-data> <topic0> [topic1...]",
	Flags:     []cli.Flag{interfaceFlag},
	Action: func(ctx *cli.Context) error {
		reg, err := loadRegistry(ctx.String("abi"))
		if err != nil {
			return err
		}
		args := ctx.Args().Slice()
		if len(args) < 2 {
			return fmt.Errorf("expected hex-data followed by at least one topic")
		}
		data := common.FromHex(args[0])
		topics := make([]common.Hash, len(args)-1)
		for i, t := range args[1:] {
			topics[i] = common.BytesToHash(common.FromHex(t))
		}
		ev, values, err := reg.DecodeLog(topics, data)
		if err != nil {
			return err
		}
		fmt.Printf("event %s\n", ev.Sig())
		for name, v := range values {
			fmt.Printf("  %s = %s\n", name, v)
		}
		return nil
	},
}

var selectorCommand = &cli.Command{
	Name:      "selector",
	Usage:     "compute the 4-byte selector for a bare function signature",
	ArgsUsage: "<signature>",
	Action: func(ctx *cli.Context) error {
		if ctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one signature argument")
		}
		fn, err := abi.ParseSelector(ctx.Args().First())
		if err != nil {
			return err
		}
		id := fn.ID()
		fmt.Println(common.Encode(id[:]))
		return nil
	},
}

var topicCommand = &cli.Command{
	Name:      "topic",
	Usage:     "compute the 32-byte topic hash for a named event",
	ArgsUsage: "<event-name>",
	Flags:     []cli.Flag{interfaceFlag},
	Action: func(ctx *cli.Context) error {
		reg, err := loadRegistry(ctx.String("abi"))
		if err != nil {
			return err
		}
		if ctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one event-name argument")
		}
		topic, err := reg.EventTopic(ctx.Args().First())
		if err != nil {
			return err
		}
		fmt.Println(topic.Hex())
		return nil
	},
}
