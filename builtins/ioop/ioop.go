//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of qsp.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

// Package ioop implements the I/O builtins of spec.md §4.7: `print`,
// `error`, and `load`.
package ioop

import (
	"fmt"
	"os"
	"strings"

	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
	"github.com/Horusiath/qsp/eval"
)

// Print implements `(print a b c)`: prints each argument separated by a
// single space followed by a newline, and returns an empty SExpr.
func Print(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	parts := make([]string, args.Len())
	for i, c := range args.Children() {
		parts[i] = c.String()
	}
	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
	a.Release(args)
	return a.NewSExpr()
}

// Error implements `(error "message")`: returns an Err carrying that
// message.
func Error(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "error", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "error", args, 0, qsp.Str); err != nil {
		return err
	}
	msg := args.Children()[0].Text()
	a.Release(args)
	return a.NewErr(msg)
}

// Load implements `(load "path")`: reads the named file, parses it, and
// evaluates each top-level form sequentially in the caller's environment.
// Any value produced by evaluation other than an error is discarded; error
// values are printed (not returned). A read or parse failure produces
// `Err("Could not load library NAME: reason")`.
func Load(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "load", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "load", args, 0, qsp.Str); err != nil {
		return err
	}
	path := args.Children()[0].Text()
	a.Release(args)

	contents, rerr := os.ReadFile(path)
	if rerr != nil {
		return a.NewErrf("Could not load library %s: %s", path, rerr)
	}

	forms, perr := qsp.ReadProgram(a, string(contents))
	if perr != nil {
		return a.NewErrf("Could not load library %s: %s", path, perr)
	}

	for _, form := range forms {
		result := eval.Eval(a, env, form)
		if result.Kind() == qsp.Err {
			fmt.Fprintln(os.Stderr, result.String())
		}
		a.Release(result)
	}
	return a.NewSExpr()
}
