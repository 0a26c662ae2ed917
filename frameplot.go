// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/frameplot/cmd/subcommands/demo"
	"github.com/Lexer747/frameplot/cmd/subcommands/play"
	"github.com/Lexer747/frameplot/utils/errors"
	"github.com/Lexer747/frameplot/utils/exit"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "demo":
			d := demo.GetFlags()
			FlagParseError(d.Parse(os.Args[2:]))
			demo.RunDemo(d)
			exit.Success()
		case "play":
			p := play.GetFlags()
			FlagParseError(p.Parse(os.Args[2:]))
			play.RunPlay(p)
			exit.Success()
		default:
			// fallthrough
		}
	}
	fmt.Fprintf(os.Stderr, "Usage of %s: <subcommand> [options]\n\n"+
		"\tdemo\trenders the example animation to a folder of PNG frames\n"+
		"\tplay\tplays an animation live in the terminal, writing nothing\n", os.Args[0])
	exit.Silent()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
