package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tabi/cmds"
	"github.com/reusee/tabi/debugs"
	"github.com/reusee/tabi/logs"
	"github.com/reusee/tabi/modes"
	"github.com/reusee/tabi/tabconfigs"
	"github.com/reusee/tabi/tablang"
	"github.com/reusee/tabi/tabscore"
)

var (
	inFlag  = cmds.Var[string]("in")
	outFlag = cmds.Var[string]("out")
	tapFlag = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if *inFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: input file is required (use 'in path/to/source')")
		cmds.PrintUsage()
		os.Exit(1)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		interpret tabscore.Interpret,
		tap debugs.Tap,
		extension tabconfigs.OutputExtension,
	) {

		source, err := os.ReadFile(*inFlag)
		ce(err)
		logger.InfoContext(ctx, "read source",
			"in", *inFlag,
			"bytes", len(source),
		)

		tabs, err := interpret(ctx, string(source))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *tapFlag {
			tokens, err := tablang.NewTokenizer(string(source)).Tokens()
			ce(err)
			tap(ctx, "interpret", map[string]any{
				"tokens": tokens,
				"tabs":   tabs,
				"staffs": staffCount(tokens),
			})
		}

		outPath := outputPath(*inFlag, *outFlag, string(extension))
		ce(os.WriteFile(outPath, []byte(tabs), 0644))
		logger.InfoContext(ctx, "wrote tabs",
			"out", outPath,
			"bytes", len(tabs),
		)
	})
}

// staffCount counts the staffs a token sequence will render: the first note
// of every run of notes that follows tab data opens a new staff.
func staffCount(tokens []tablang.Token) int {
	count := 0
	inNotes := false
	for _, token := range tokens {
		switch token.Kind {
		case tablang.TokenNote:
			if !inNotes {
				count++
				inNotes = true
			}
		case tablang.TokenNumber,
			tablang.TokenEmpty,
			tablang.TokenNext,
			tablang.TokenSpreadEmpty,
			tablang.TokenSpreadNext:
			inNotes = false
		}
	}
	return count
}
