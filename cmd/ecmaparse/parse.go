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
	"time"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

/*
runParse parses every given file and prints the teacher's familiar "got N
syntax errors" summary (spec.md §7) per file, plus a columnized table of
the individual diagnostics.
*/
func runParse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("parse: no files given")
	}

	start := time.Now()
	totalErrors := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}

		env := config.Default()
		if flagIDEMode {
			env = config.IDE()
		}
		env.ReportWarningAsError = flagWarnAsErr

		reporter := perr.NewReporter(path, env.RecoverFromErrors, env.IDEMode, env.ReportWarningAsError)
		p := parser.New(path, string(data), 1, env, reporter)

		if flagModule {
			p.ParseModule()
		} else {
			p.ParseScript()
		}

		totalErrors += reporter.Count()

		if lines := diagnosticLines(reporter.Errors()); len(lines) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), columnize.SimpleFormat(lines))
		}

		if summary := reporter.Summary(); summary != "" {
			fmt.Fprintln(cmd.OutOrStdout(), summary)
		}
	}

	if flagStats {
		fmt.Fprintf(cmd.OutOrStdout(), "parsed %d file(s) in %s\n", len(args), time.Since(start))
	}

	if totalErrors > 0 {
		return fmt.Errorf("got %d syntax error(s)", totalErrors)
	}
	return nil
}

/*
diagnosticLines renders each SyntaxError as a columnize row of
source|line:col|severity|detail.
*/
func diagnosticLines(errs []*perr.SyntaxError) []string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("%s | %d:%d | %s | %s",
			e.Source, e.Pos.Line, e.Pos.Column, e.Severity, e.Detail))
	}
	return lines
}
