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

// Package eval implements the S-expression reduction rule and the
// function-application protocol of spec.md §4.6: eager argument
// evaluation, builtin vs. lambda dispatch, partial application, and the
// variadic binding tail.
package eval

import "github.com/Horusiath/qsp"

// Eval reduces v in env, per spec §4.6:
//   - a Sym resolves via env and the query value is released;
//   - an SExpr runs S-expression reduction;
//   - anything else (Num, Str, Err, Fun, QExpr) is returned unchanged.
func Eval(a *qsp.Arena, env *qsp.Env, v *qsp.Value) *qsp.Value {
	switch v.Kind() {
	case qsp.Sym:
		result := env.Get(a, v)
		a.Release(v)
		return result
	case qsp.SExpr:
		return evalSExpr(a, env, v)
	default:
		return v
	}
}

// evalSExpr implements the S-expression reduction rule of §4.6:
//  1. evaluate every child in index order;
//  2. surface the first Err child, if any, discarding the rest;
//  3. an empty list evaluates to itself;
//  4. a single-element list evaluates to its sole child, except that a sole
//     lambda is applied to no arguments (so `(f)` runs a variadic f);
//  5. otherwise the head must be a Fun, and apply() runs the remainder.
func evalSExpr(a *qsp.Arena, env *qsp.Env, v *qsp.Value) *qsp.Value {
	for i, c := range v.Children() {
		v.ReplaceChild(i, Eval(a, env, c))
	}
	v.RecomputeListHash()

	for _, c := range v.Children() {
		if c.Kind() == qsp.Err {
			result := a.Share(c)
			a.Release(v)
			return result
		}
	}

	switch v.Len() {
	case 0:
		return v
	case 1:
		if v.Children()[0].IsLambda() {
			head := v.Pop(0)
			result := Apply(a, env, head, v)
			a.Release(head)
			return result
		}
		result := a.Share(v.Children()[0])
		a.Release(v)
		return result
	}

	head := v.Pop(0)
	if head.Kind() != qsp.Fun {
		got := head.Kind()
		a.Release(head)
		a.Release(v)
		return a.NewErrf("S-Expression starts with incorrect type! Got %s, expected Function", got)
	}

	result := Apply(a, env, head, v)
	a.Release(head)
	return result
}
