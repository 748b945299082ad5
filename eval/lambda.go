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

package eval

import "github.com/Horusiath/qsp"

// applyLambda implements the formal/actual binding protocol of spec §4.6.
//
// The protocol is described there as operating directly on "F = f.formals"
// by popping from it. Doing that literally would mutate the one stored
// Lambda value shared by every lookup of the defining symbol (env.Get only
// bumps a reference count, it never clones — see spec §4.3's definition of
// share()), so a second full call of the same bound lambda would find its
// formals already drained by the first call. We instead pop from a
// DeepCopy of f.Formals() taken at the start of the call: this keeps the
// canonical formals list intact across calls while preserving the
// documented persistence that matters, namely that f's captured
// environment (f.LambdaEnv()) is shared and mutated across curried calls
// (see SPEC_FULL.md's Resolved Open Questions, #5).
func applyLambda(a *qsp.Arena, env *qsp.Env, f *qsp.Value, args *qsp.Value) *qsp.Value {
	total := f.Formals().Len()
	given := args.Len()
	formals := a.DeepCopy(f.Formals())
	lenv := f.LambdaEnv()

	for args.Len() > 0 {
		if formals.Len() == 0 {
			a.Release(formals)
			a.Release(args)
			return a.NewErrf(
				"Function passed too many arguments. Got %d, expected %d", given, total)
		}
		sym := formals.Pop(0)
		if sym.Text() == "&" {
			if formals.Len() != 1 {
				a.Release(sym)
				a.Release(formals)
				a.Release(args)
				return a.NewErr("Function format invalid. Symbol '&' not followed by single symbol")
			}
			rest := formals.Pop(0)
			varArgs := a.NewQExpr(popAll(args)...)
			lenv.Put(a, rest, varArgs)
			a.Release(rest)
			a.Release(varArgs)
			a.Release(sym)
			break
		}
		val := args.Pop(0)
		lenv.Put(a, sym, val)
		a.Release(val)
		a.Release(sym)
	}
	a.Release(args)

	// A trailing "&" with no args supplied for it: bind its formal to an
	// empty QExpr and discard the marker.
	if formals.Len() >= 1 && formals.Children()[0].Text() == "&" {
		if formals.Len() != 2 {
			a.Release(formals)
			return a.NewErr("Function format invalid. Symbol '&' not followed by single symbol")
		}
		amp := formals.Pop(0)
		rest := formals.Pop(0)
		empty := a.NewQExpr()
		lenv.Put(a, rest, empty)
		a.Release(empty)
		a.Release(rest)
		a.Release(amp)
	}

	if formals.Len() == 0 {
		a.Release(formals)
		f.SetLambdaParent(env)
		return runBody(a, lenv, f.Body())
	}

	// The returned partial gets its own copy of lenv rather than sharing the
	// live *Env pointer with f: environments aren't reference-counted, so
	// releasing the partial would otherwise release bindings still owned by
	// f's captured environment out from under it. f keeps the mutated lenv
	// (the bindings made above persist on f, which is the intentional
	// currying behaviour), the partial just doesn't share its identity.
	partial := a.NewLambda(lenv.Copy(a), formals, a.Share(f.Body()))
	return partial
}

// popAll pops and returns every remaining child of a list value, in order.
func popAll(v *qsp.Value) []*qsp.Value {
	out := make([]*qsp.Value, 0, v.Len())
	for v.Len() > 0 {
		out = append(out, v.Pop(0))
	}
	return out
}

// runBody evaluates a lambda's body in its (now fully bound) environment.
// The body is a stored, permanently-shared QExpr value (spec §3): rather
// than retagging it to SExpr in place — which would corrupt the canonical
// definition for every future call — a fresh SExpr is built from deep copies
// of the body's top-level forms, and that fresh container is what actually
// gets evaluated and released. Copying (not sharing) the forms matters
// because evaluation rewrites nested S-expressions in place.
func runBody(a *qsp.Arena, env *qsp.Env, body *qsp.Value) *qsp.Value {
	children := make([]*qsp.Value, body.Len())
	for i, c := range body.Children() {
		children[i] = a.DeepCopy(c)
	}
	call := a.NewSExpr(children...)
	return Eval(a, env, call)
}
