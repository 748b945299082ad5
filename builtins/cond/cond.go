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

// Package cond implements the conditional builtin of spec.md §4.7: `if`.
package cond

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
	"github.com/Horusiath/qsp/eval"
)

// If implements `(if cond {then} {else})`: retags the chosen QExpr branch to
// SExpr and evaluates it, releasing the branch not taken.
func If(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "if", args, 3); err != nil {
		return err
	}
	if err := check.CheckType(a, "if", args, 0, qsp.Num); err != nil {
		return err
	}
	if err := check.CheckType(a, "if", args, 1, qsp.QExpr); err != nil {
		return err
	}
	if err := check.CheckType(a, "if", args, 2, qsp.QExpr); err != nil {
		return err
	}
	test := args.Pop(0)
	thenBranch := args.Pop(0)
	elseBranch := args.Pop(0)
	a.Release(args)

	var chosen, other *qsp.Value
	if test.Num() != 0 {
		chosen, other = thenBranch, elseBranch
	} else {
		chosen, other = elseBranch, thenBranch
	}
	a.Release(test)
	a.Release(other)

	chosen.Retag(qsp.SExpr)
	return eval.Eval(a, env, chosen)
}
