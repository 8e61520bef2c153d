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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"devt.de/krotik/common/fileutil"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

/*
runFmt walks dir (or the current directory) and rewrites every file
matching --ext in place with its AST-printed form, mirroring the
directory-walk-and-rewrite behaviour of the teacher's Format
(cli/tool/format.go) but driving ast.Print instead of a
text/template-keyed pretty-printer.
*/
func runFmt(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if ok, _ := fileutil.PathExists(dir); !ok {
		return fmt.Errorf("fmt: %s does not exist", dir)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Formatting all %v files in %v\n", flagExt, dir)

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, flagExt) {
			return err
		}

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}

		env := config.Default()
		reporter := perr.NewReporter(path, false, false, false)
		p := parser.New(path, string(data), 1, env, reporter)

		root, ferr := p.ParseScript()
		if ferr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not format %v: %v\n", path, ferr)
			return nil
		}

		return os.WriteFile(path, []byte(ast.Print(root)), info.Mode())
	})
}
