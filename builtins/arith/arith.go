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

// Package arith implements the arithmetic and ordering builtins of spec.md
// §4.7: `+ - * /` and `< <= > >=`.
package arith

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
)

// Add implements `(+ n...)`: left-fold sum, at least one Num argument.
func Add(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return fold(a, "+", args, func(acc, n int64) (int64, *qsp.Value) { return acc + n, nil })
}

// Sub implements `(- n...)`: left-fold difference; unary form negates.
func Sub(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if args.Len() == 1 {
		if err := checkNum(a, "-", args, 0); err != nil {
			return err
		}
		n := args.Children()[0].Num()
		a.Release(args)
		return a.NewNum(-n)
	}
	return fold(a, "-", args, func(acc, n int64) (int64, *qsp.Value) { return acc - n, nil })
}

// Mul implements `(* n...)`: left-fold product.
func Mul(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return fold(a, "*", args, func(acc, n int64) (int64, *qsp.Value) { return acc * n, nil })
}

// Div implements `(/ n...)`: left-fold integer division; dividing by zero
// produces `Err("Division by zero!")`.
func Div(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	return fold(a, "/", args, func(acc, n int64) (int64, *qsp.Value) {
		if n == 0 {
			return 0, a.NewErr("Division by zero!")
		}
		return acc / n, nil
	})
}

// fold implements the common ≥1-Num left-fold shape shared by `+ - * /`: the
// accumulator starts at the first argument, then combine runs over the rest
// in order. combine may return a non-nil error value to abort early.
func fold(a *qsp.Arena, name string, args *qsp.Value, combine func(acc, n int64) (int64, *qsp.Value)) *qsp.Value {
	if err := check.CheckMinCount(a, name, args, 1); err != nil {
		return err
	}
	for i, c := range args.Children() {
		if c.Kind() != qsp.Num {
			got := c.Kind()
			a.Release(args)
			return a.NewErrf("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", name, i, got, qsp.Num)
		}
	}
	acc := args.Children()[0].Num()
	for _, c := range args.Children()[1:] {
		var errv *qsp.Value
		acc, errv = combine(acc, c.Num())
		if errv != nil {
			a.Release(args)
			return errv
		}
	}
	a.Release(args)
	return a.NewNum(acc)
}

func checkNum(a *qsp.Arena, name string, args *qsp.Value, i int) *qsp.Value {
	if args.Children()[i].Kind() != qsp.Num {
		got := args.Children()[i].Kind()
		a.Release(args)
		return a.NewErrf("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", name, i, got, qsp.Num)
	}
	return nil
}

// compareOp builds a comparison builtin over exactly two Num arguments.
func compareOp(name string, cmp func(x, y int64) bool) qsp.BuiltinFn {
	return func(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
		if args.Len() != 2 {
			got := args.Len()
			a.Release(args)
			return a.NewErrf("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", name, got, 2)
		}
		if err := checkNum(a, name, args, 0); err != nil {
			return err
		}
		if err := checkNum(a, name, args, 1); err != nil {
			return err
		}
		x, y := args.Children()[0].Num(), args.Children()[1].Num()
		a.Release(args)
		if cmp(x, y) {
			return a.NewNum(1)
		}
		return a.NewNum(0)
	}
}

// Lt, Le, Gt, Ge implement `< <= > >=`.
var (
	Lt = compareOp("<", func(x, y int64) bool { return x < y })
	Le = compareOp("<=", func(x, y int64) bool { return x <= y })
	Gt = compareOp(">", func(x, y int64) bool { return x > y })
	Ge = compareOp(">=", func(x, y int64) bool { return x >= y })
)
