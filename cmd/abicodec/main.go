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

// abicodec is a command-line tool for encoding and decoding ABI-style
// function calls, return data and event logs against a JSON interface
// document.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vmabi/codec/log"
)

var app = &cli.App{
	Name:  "abicodec",
	Usage: "encode and decode ABI function calls, results and event logs",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "verbosity", Value: "info", Usage: "log verbosity: trace|debug|info|warn|error|crit"},
	},
	Before: func(ctx *cli.Context) error {
		setupLogging(ctx.String("verbosity"))
		return nil
	},
	Commands: []*cli.Command{
		encodeFunctionCommand,
		decodeFunctionCommand,
		decodeLogCommand,
		selectorCommand,
		topicCommand,
	},
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "trace":
		lvl = log.LevelTrace
	case "debug":
		lvl = log.LevelDebug
	case "warn":
		lvl = log.LevelWarn
	case "error":
		lvl = log.LevelError
	case "crit":
		lvl = log.LevelCrit
	default:
		lvl = log.LevelInfo
	}
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)
	log.SetDefault(log.NewLogger(handler))
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
