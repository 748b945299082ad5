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

// Package define implements the binding and lambda-construction builtins of
// spec.md §4.7: `def`, `=`, and `\`.
package define

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
)

// Def implements `(def {x y} 1 2)`: binds each symbol in the first QExpr
// argument to the corresponding following value, always in the outermost
// (global) scope.
func Def(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return bind(a, env, args, "def", (*qsp.Env).Def)
}

// Put implements `(= {x y} 1 2)`: same as Def, but binds in the current
// (local) scope.
func Put(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return bind(a, env, args, "=", (*qsp.Env).Put)
}

func bind(a *qsp.Arena, env *qsp.Env, args *qsp.Value, name string, assign func(*qsp.Env, *qsp.Arena, *qsp.Value, *qsp.Value)) *qsp.Value {
	if err := check.CheckMinCount(a, name, args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, name, args, 0, qsp.QExpr); err != nil {
		return err
	}
	syms := args.Children()[0]
	for _, c := range syms.Children() {
		if c.Kind() != qsp.Sym {
			got := c.Kind()
			a.Release(args)
			return a.NewErrf("Function '%s' cannot define non-symbol. Got %s, expected %s.", name, got, qsp.Sym)
		}
	}
	if syms.Len() != args.Len()-1 {
		a.Release(args)
		return a.NewErrf("Function '%s' passed too many arguments for symbols. Got %d, expected %d.", name, args.Len()-1, syms.Len())
	}
	for i, sym := range syms.Children() {
		assign(env, a, sym, args.Children()[i+1])
	}
	a.Release(args)
	return a.NewSExpr()
}

// Lambda implements `(\ {x y} {+ x y})`: constructs a user-defined function
// value with a fresh, empty captured environment. Both arguments must be
// QExpr; the formals list must contain only symbols.
func Lambda(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "\\", args, 2); err != nil {
		return err
	}
	if err := check.CheckType(a, "\\", args, 0, qsp.QExpr); err != nil {
		return err
	}
	if err := check.CheckType(a, "\\", args, 1, qsp.QExpr); err != nil {
		return err
	}
	formals := args.Children()[0]
	for _, c := range formals.Children() {
		if c.Kind() != qsp.Sym {
			got := c.Kind()
			a.Release(args)
			return a.NewErrf("Cannot define non-symbol. Got %s, expected %s.", got, qsp.Sym)
		}
	}
	formalsV := args.Pop(0)
	bodyV := args.Pop(0)
	a.Release(args)
	return a.NewLambda(qsp.NewEnv(nil), formalsV, bodyV)
}
