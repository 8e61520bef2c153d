/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Command ecmaparse is the CLI front end for the parser: parse, fmt, ast
// and repl subcommands, rebuilt on cobra in place of the teacher's raw
// flag-based dispatch (cli/ecal.go) since a multi-subcommand tool is
// exactly cobra's niche.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
