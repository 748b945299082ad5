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

// Env is a lexically-scoped environment: a HashMap from a symbol's hash to
// a shared Value reference, plus an optional parent. Every lambda carries
// its own Env; during a call its parent is rebound to the caller's
// environment so free variables resolve via lexical chaining (spec §3/§4.4).
//
// The HashMap keys strictly on the 32-bit symbol hash, per spec §4.2/§9: two
// distinct symbol names whose hashes collide will shadow each other in the
// same Env. This is the reference behaviour, not a bug to silently work
// around here.
type Env struct {
	parent *Env
	table  *HashMap
}

// NewEnv creates an environment with the given optional parent.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: NewHashMap()}
}

// Parent returns the environment's parent, or nil for the outermost scope.
func (e *Env) Parent() *Env { return e.parent }

// Get looks up sym's hash in this scope, recursing into parents on miss. On
// a global miss it returns an Err value ("Unbound symbol 'NAME'"); NAME
// comes from sym itself, not from the table, so the error text is always
// correct for the symbol actually looked up even under a hash collision.
func (e *Env) Get(a *Arena, sym *Value) *Value {
	for env := e; env != nil; env = env.parent {
		if val, found := env.table.Get(sym.hash); found {
			return a.Share(val)
		}
	}
	return a.NewErrf("Unbound symbol '%s'", sym.text)
}

// Put stores Share(v) at sym's hash in the current scope, overwriting any
// previous binding there.
func (e *Env) Put(a *Arena, sym *Value, v *Value) {
	if old, found := e.table.Get(sym.hash); found {
		a.Release(old)
	}
	e.table.Put(sym.hash, a.Share(v))
}

// Def walks to the outermost parent and Puts there. `def` is always global;
// `=` (via Put) is always local — spec §4.4.
func (e *Env) Def(a *Arena, sym *Value, v *Value) {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	env.Put(a, sym, v)
}

// Copy produces a new environment with the same parent pointer and a fresh
// map whose bindings are Share'd, per spec §4.4. Used by DeepCopy of a
// lambda value, and by the partial-application path in eval.applyLambda so
// a partially-applied lambda never shares its live *Env with the original
// (releasing one would otherwise free bindings still owned by the other).
func (e *Env) Copy(a *Arena) *Env {
	ne := NewEnv(e.parent)
	e.table.Each(func(hash uint32, val *Value) {
		ne.table.Put(hash, a.Share(val))
	})
	return ne
}

// release releases every bound value and discards the map.
func (e *Env) release(a *Arena) {
	e.table.Each(func(_ uint32, val *Value) {
		a.Release(val)
	})
	e.table = NewHashMap()
}

// Size returns the number of bindings in this scope (not counting parents).
func (e *Env) Size() int { return e.table.Len() }
