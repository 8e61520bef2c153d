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
	"github.com/spf13/cobra"
)

// --- Global flag variables, shared across subcommands ---
var (
	flagModule     bool
	flagIDEMode    bool
	flagWarnAsErr  bool
	flagExt        string
	flagStats      bool

	rootCmd = &cobra.Command{
		Use:   "ecmaparse",
		Short: "A recursive-descent ECMAScript parser",
		Long: `ecmaparse parses ECMAScript/JavaScript source into an AST.

Available commands print a syntax-error summary (parse), dump the AST as
JSON (ast) or round-trip source files through the AST printer (fmt).`,
	}

	parseCmd = &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse files and report syntax errors",
		RunE:  runParse,
	}

	astCmd = &cobra.Command{
		Use:   "ast [file]",
		Short: "Parse a file and dump its AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAST,
	}

	fmtCmd = &cobra.Command{
		Use:   "fmt [dir]",
		Short: "Reformat all matching files under a directory in place",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFmt,
	}

	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Read one source line at a time and print its AST",
		RunE:  runRepl,
	}
)

func init() {
	parseCmd.Flags().BoolVar(&flagModule, "module", false, "parse as a Module instead of a Script")
	parseCmd.Flags().BoolVar(&flagIDEMode, "ide", false, "never abort on a fatal error; accumulate everything")
	parseCmd.Flags().BoolVar(&flagWarnAsErr, "warn-as-error", false, "treat strict-mode warnings as errors")
	parseCmd.Flags().BoolVar(&flagStats, "stats", false, "report parse wall-clock time")

	astCmd.Flags().BoolVar(&flagModule, "module", false, "parse as a Module instead of a Script")

	fmtCmd.Flags().StringVar(&flagExt, "ext", ".js", "file extension to reformat")

	rootCmd.AddCommand(parseCmd, astCmd, fmtCmd, replCmd)
}
