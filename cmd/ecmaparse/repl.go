/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devt.de/krotik/common/termutil"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

/*
runRepl reads one source line at a time and prints its parsed AST,
adapted from the teacher's interactive console loop (cli/tool/
interpret.go's Interpret) - that loop hands each line to an interpreter,
this one hands it to a fresh single-use Parser instead, since a Script
grammar has no notion of incremental statement-by-statement evaluation.
*/
func runRepl(cmd *cobra.Command, args []string) error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", func(s string) bool {
		t := strings.TrimSpace(s)
		return t == "q" || t == "quit"
	})
	if err != nil {
		return err
	}

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Fprintln(cmd.OutOrStdout(), "Type 'q' or 'quit' to exit")

	line, err := term.NextLine()
	for err == nil {
		trimmed := strings.TrimSpace(line)
		if trimmed == "q" || trimmed == "quit" {
			break
		}

		if trimmed != "" {
			printParsedLine(cmd, trimmed)
		}

		line, err = term.NextLine()
	}

	return nil
}

func printParsedLine(cmd *cobra.Command, src string) {
	env := config.IDE()
	reporter := perr.NewReporter("<repl>", true, true, false)
	p := parser.New("<repl>", src, 1, env, reporter)

	root, _ := p.ParseScript()

	if summary := reporter.Summary(); summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
		for _, e := range reporter.Errors() {
			fmt.Fprintln(cmd.ErrOrStderr(), " ", e.Error())
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ast.Print(root))
}
