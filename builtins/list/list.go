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

// Package list implements the quoted-list manipulation builtins of
// spec.md §4.7: `list head tail init join cons len eval`.
package list

import (
	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins/check"
	"github.com/Horusiath/qsp/eval"
)

// List implements `(list a b c)`: retags the already-evaluated SExpr of
// arguments to QExpr in place and returns it, per spec.md §4.7.
func List(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	args.Retag(qsp.QExpr)
	return args
}

// Head implements `(head {x y z})` → `{x}`.
func Head(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "head", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "head", args, 0, qsp.QExpr); err != nil {
		return err
	}
	if err := check.CheckNonEmpty(a, "head", args, 0); err != nil {
		return err
	}
	q := args.Pop(0)
	a.Release(args)
	first := q.Pop(0)
	a.Release(q)
	return a.NewQExpr(first)
}

// Tail implements `(tail {x y z})` → `{y z}`.
func Tail(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "tail", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "tail", args, 0, qsp.QExpr); err != nil {
		return err
	}
	if err := check.CheckNonEmpty(a, "tail", args, 0); err != nil {
		return err
	}
	q := args.Pop(0)
	a.Release(args)
	a.Release(q.Pop(0))
	return q
}

// Init implements `(init {x y z})` → `{x y}`.
func Init(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "init", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "init", args, 0, qsp.QExpr); err != nil {
		return err
	}
	if err := check.CheckNonEmpty(a, "init", args, 0); err != nil {
		return err
	}
	q := args.Pop(0)
	a.Release(args)
	a.Release(q.Pop(q.Len() - 1))
	return q
}

// Join implements `(join {a} {b c})` → `{a b c}`: concatenates one or more
// QExprs in order.
func Join(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckMinCount(a, "join", args, 1); err != nil {
		return err
	}
	for i := range args.Children() {
		if err := check.CheckType(a, "join", args, i, qsp.QExpr); err != nil {
			return err
		}
	}
	result := args.Pop(0)
	for args.Len() > 0 {
		next := args.Pop(0)
		for next.Len() > 0 {
			result.Add(next.Pop(0))
		}
		a.Release(next)
	}
	a.Release(args)
	return result
}

// Cons implements `(cons x {a b})` → `{x a b}`: prepends a value to a list.
func Cons(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "cons", args, 2); err != nil {
		return err
	}
	if err := check.CheckType(a, "cons", args, 1, qsp.QExpr); err != nil {
		return err
	}
	head := args.Pop(0)
	tail := args.Pop(0)
	a.Release(args)
	children := append([]*qsp.Value{head}, tail.Children()...)
	result := a.NewQExpr(children...)
	// tail's children have been adopted by result (the pointers were copied
	// into result's own slice); clear tail's slice before releasing it so
	// Release does not also release the now-shared children out from under
	// result.
	emptyTail(tail)
	a.Release(tail)
	return result
}

// emptyTail drains a QExpr's children slice without releasing them, so the
// now-empty shell can be released independently of values it handed off.
func emptyTail(v *qsp.Value) {
	for v.Len() > 0 {
		v.Pop(0)
	}
}

// Len implements `(len {x y z})` → `3`.
func Len(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "len", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "len", args, 0, qsp.QExpr); err != nil {
		return err
	}
	n := args.Children()[0].Len()
	a.Release(args)
	return a.NewNum(int64(n))
}

// Eval implements `(eval {+ 1 2})` → `3`: retags a QExpr to SExpr in place
// and evaluates it in the caller's environment. When the argument is also
// held elsewhere (for instance it is the value of a bound symbol, which env
// lookup shares rather than copies), a deep copy is retagged and evaluated
// instead, so the stored value is left unchanged — see eval/lambda.go for
// the same concern with a lambda's stored body.
func Eval(a *qsp.Arena, env *qsp.Env, args *qsp.Value) *qsp.Value {
	if err := check.CheckCount(a, "eval", args, 1); err != nil {
		return err
	}
	if err := check.CheckType(a, "eval", args, 0, qsp.QExpr); err != nil {
		return err
	}
	q := args.Pop(0)
	a.Release(args)
	if q.Refs() > 1 {
		cp := a.DeepCopy(q)
		a.Release(q)
		q = cp
	}
	q.Retag(qsp.SExpr)
	return eval.Eval(a, env, q)
}
