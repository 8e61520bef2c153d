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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

/*
runAST parses a single file and dumps its AST as indented JSON, via
ast.Node's ToJSONObject, the way the teacher dumps an ASTNode tree for
debugging (cli/tool/debug.go).
*/
func runAST(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	env := config.IDE()
	reporter := perr.NewReporter(path, true, true, false)
	p := parser.New(path, string(data), 1, env, reporter)

	var root *ast.Node
	if flagModule {
		root, _ = p.ParseModule()
	} else {
		root, _ = p.ParseScript()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(root.ToJSONObject()); err != nil {
		return err
	}

	if summary := reporter.Summary(); summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}
	return nil
}
