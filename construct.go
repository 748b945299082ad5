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

package qsp

import "fmt"

// Every constructor acquires a cell from the arena, sets refs to 1, and
// fills in kind/payload/hash. Panicking on arena exhaustion mirrors the
// reference implementation's behaviour (an allocator failure here is not a
// language-level condition a program can recover from), but it is rare in
// practice given ArenaCeiling; mustAcquire is kept separate from Acquire so
// callers that want to handle OUT_OF_MEMORY explicitly still can.

func (a *Arena) mustAcquire() *Value {
	v, err := a.Acquire()
	if err != nil {
		panic(err)
	}
	return v
}

// NewNum constructs a Num value.
func (a *Arena) NewNum(n int64) *Value {
	v := a.mustAcquire()
	v.kind = Num
	v.num = n
	v.hash = hashNum(n)
	v.refs = 1
	return v
}

// NewStr constructs a Str value.
func (a *Arena) NewStr(s string) *Value {
	v := a.mustAcquire()
	v.kind = Str
	v.text = s
	v.hash = hashText(s)
	v.refs = 1
	return v
}

// NewSym constructs a Sym value.
func (a *Arena) NewSym(name string) *Value {
	v := a.mustAcquire()
	v.kind = Sym
	v.text = name
	v.hash = hashText(name)
	v.refs = 1
	return v
}

// NewErr constructs an Err value carrying the given message.
func (a *Arena) NewErr(msg string) *Value {
	v := a.mustAcquire()
	v.kind = Err
	v.text = msg
	v.hash = hashText(msg)
	v.refs = 1
	return v
}

// NewErrf constructs an Err value via fmt.Sprintf-style formatting.
func (a *Arena) NewErrf(format string, args ...any) *Value {
	return a.NewErr(fmt.Sprintf(format, args...))
}

// NewBuiltin constructs a Fun value wrapping a builtin implementation.
func (a *Arena) NewBuiltin(name string, fn BuiltinFn) *Value {
	v := a.mustAcquire()
	v.kind = Fun
	v.fn = &builtin{name: name, fn: fn}
	v.hash = hashBuiltin(name)
	v.refs = 1
	return v
}

// NewLambda constructs a Fun value wrapping a user-defined lambda. formals
// and body are owned by the returned value (their ownership is transferred
// in, not shared).
func (a *Arena) NewLambda(env *Env, formals, body *Value) *Value {
	v := a.mustAcquire()
	v.kind = Fun
	v.lambda = &Lambda{env: env, formals: formals, body: body}
	v.hash = hashLambda(formals, body)
	v.refs = 1
	return v
}

// NewSExpr constructs an SExpr holding the given children (empty if none
// are given), taking ownership of them (already-owned references).
func (a *Arena) NewSExpr(children ...*Value) *Value {
	v := a.mustAcquire()
	v.kind = SExpr
	v.children = children
	v.hash = hashList(children)
	v.refs = 1
	return v
}

// NewQExpr constructs a QExpr holding the given children (empty if none are
// given), taking ownership of them.
func (a *Arena) NewQExpr(children ...*Value) *Value {
	v := a.mustAcquire()
	v.kind = QExpr
	v.children = children
	v.hash = hashList(children)
	v.refs = 1
	return v
}

// Add appends an already-owned child to a list value (SExpr or QExpr) and
// recomputes its hash. It is the equivalent of `lval_add` in the original
// implementation.
func (v *Value) Add(child *Value) {
	v.children = append(v.children, child)
	v.hash = hashList(v.children)
}

// Pop removes and returns the i'th child of a list value, shifting the
// remaining children down. It is the equivalent of `lval_pop`: ownership of
// the popped value transfers to the caller, the list's hash is recomputed.
func (v *Value) Pop(i int) *Value {
	child := v.children[i]
	v.children = append(v.children[:i], v.children[i+1:]...)
	v.hash = hashList(v.children)
	return child
}

// ReplaceChild overwrites the i'th child of a list value in place. Callers
// must call RecomputeListHash once all replacements for a pass are done.
func (v *Value) ReplaceChild(i int, nv *Value) { v.children[i] = nv }

// RecomputeListHash recomputes a list value's hash from its current
// children, after one or more ReplaceChild calls.
func (v *Value) RecomputeListHash() { v.hash = hashList(v.children) }

// Retag changes a list value's kind between SExpr and QExpr in place,
// without touching its payload. This is the only place a Value's kind
// changes after construction (spec §3), used by the `list`, `eval` and `if`
// builtins.
func (v *Value) Retag(kind Kind) { v.kind = kind }
