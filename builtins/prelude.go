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

package builtins

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/arith"
	"github.com/Horusiath/qsp/builtins/cond"
	"github.com/Horusiath/qsp/builtins/define"
	"github.com/Horusiath/qsp/builtins/equiv"
	"github.com/Horusiath/qsp/builtins/ioop"
	"github.com/Horusiath/qsp/builtins/list"
)

// BindAll registers every builtin function named in spec.md §4.7 into env,
// in the global scope (env is expected to be the outermost environment).
func BindAll(a *qsp.Arena, env *qsp.Env) {
	register := func(name string, fn qsp.BuiltinFn) {
		sym := a.NewSym(name)
		fnv := a.NewBuiltin(name, fn)
		env.Put(a, sym, fnv)
		a.Release(sym)
		a.Release(fnv)
	}

	register("+", arith.Add)
	register("-", arith.Sub)
	register("*", arith.Mul)
	register("/", arith.Div)
	register("<", arith.Lt)
	register("<=", arith.Le)
	register(">", arith.Gt)
	register(">=", arith.Ge)

	register("==", equiv.Eq)
	register("!=", equiv.Ne)
	register("&&", equiv.And)
	register("||", equiv.Or)
	register("!", equiv.Not)

	register("list", list.List)
	register("head", list.Head)
	register("tail", list.Tail)
	register("init", list.Init)
	register("join", list.Join)
	register("cons", list.Cons)
	register("len", list.Len)
	register("eval", list.Eval)

	register("def", define.Def)
	register("=", define.Put)
	register("\\", define.Lambda)

	register("if", cond.If)

	register("print", ioop.Print)
	register("error", ioop.Error)
	register("load", ioop.Load)
}
