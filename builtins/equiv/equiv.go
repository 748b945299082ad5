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

// Package equiv implements structural equality and boolean short-circuit
// builtins of spec.md §4.7: `== != && || !`.
package equiv

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
)

// Eq implements `(== x y)`: structural equality, any types.
func Eq(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return cmp(a, "==", args, true)
}

// Ne implements `(!= x y)`.
func Ne(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return cmp(a, "!=", args, false)
}

func cmp(a *qsp.Arena, name string, args *qsp.Value, want bool) *qsp.Value {
	if err := check.CheckCount(a, name, args, 2); err != nil {
		return err
	}
	eq := qsp.IsEqual(args.Children()[0], args.Children()[1])
	a.Release(args)
	if eq == want {
		return a.NewNum(1)
	}
	return a.NewNum(0)
}

// And implements `(&& x y)`, both Num: if the first operand is 0 the result
// is the first operand, otherwise the second — evaluated eagerly per
// spec.md §5 (both arguments are already evaluated by the time a builtin
// runs; only the *result selection* short-circuits).
func And(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "&&", args, 2); err != nil {
		return err
	}
	if err := checkNum(a, "&&", args, 0); err != nil {
		return err
	}
	if err := checkNum(a, "&&", args, 1); err != nil {
		return err
	}
	x, y := args.Pop(0), args.Pop(0)
	a.Release(args)
	if x.Num() == 0 {
		a.Release(y)
		return x
	}
	a.Release(x)
	return y
}

// Or implements `(|| x y)`: dual of And.
func Or(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "||", args, 2); err != nil {
		return err
	}
	if err := checkNum(a, "||", args, 0); err != nil {
		return err
	}
	if err := checkNum(a, "||", args, 1); err != nil {
		return err
	}
	x, y := args.Pop(0), args.Pop(0)
	a.Release(args)
	if x.Num() != 0 {
		a.Release(y)
		return x
	}
	a.Release(x)
	return y
}

// Not implements `(! x)`, Num: 1 if x is 0, else 0.
func Not(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "!", args, 1); err != nil {
		return err
	}
	if err := checkNum(a, "!", args, 0); err != nil {
		return err
	}
	n := args.Children()[0].Num()
	a.Release(args)
	if n == 0 {
		return a.NewNum(1)
	}
	return a.NewNum(0)
}

func checkNum(a *qsp.Arena, name string, args *qsp.Value, i int) *qsp.Value {
	return check.CheckType(a, name, args, i, qsp.Num)
}
