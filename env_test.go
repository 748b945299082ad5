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

package qsp_test

import (
	"testing"

	"github.com/Horusiath/qsp"
)

func TestEnvGetPutLocal(t *testing.T) {
	a := testArena(t)
	env := qsp.NewEnv(nil)
	sym := a.NewSym("x")
	val := a.NewNum(7)
	env.Put(a, sym, val)

	got := env.Get(a, a.Share(sym))
	if got.Kind() != qsp.Num || got.Num() != 7 {
		t.Errorf("Get returned %v, want Num 7", got)
	}
	a.Release(got)
	a.Release(sym)
	a.Release(val)
}

func TestEnvGetWalksParent(t *testing.T) {
	a := testArena(t)
	parent := qsp.NewEnv(nil)
	child := qsp.NewEnv(parent)
	sym := a.NewSym("x")
	val := a.NewNum(3)
	parent.Put(a, sym, val)

	got := child.Get(a, a.Share(sym))
	if got.Kind() != qsp.Num || got.Num() != 3 {
		t.Errorf("child lookup through parent = %v, want Num 3", got)
	}
	a.Release(got)
	a.Release(sym)
	a.Release(val)
}

func TestEnvUnboundSymbol(t *testing.T) {
	a := testArena(t)
	env := qsp.NewEnv(nil)
	sym := a.NewSym("nope")
	got := env.Get(a, a.Share(sym))
	if got.Kind() != qsp.Err {
		t.Fatalf("Get of unbound symbol = %v, want Err", got)
	}
	if got.Text() != "Unbound symbol 'nope'" {
		t.Errorf("error text = %q", got.Text())
	}
	a.Release(got)
	a.Release(sym)
}

func TestEnvDefTargetsOutermost(t *testing.T) {
	a := testArena(t)
	root := qsp.NewEnv(nil)
	child := qsp.NewEnv(root)
	grandchild := qsp.NewEnv(child)

	sym := a.NewSym("g")
	val := a.NewNum(99)
	grandchild.Def(a, sym, val)

	if root.Size() != 1 {
		t.Errorf("root bindings = %d, want 1 (def must always target outermost scope)", root.Size())
	}
	if child.Size() != 0 || grandchild.Size() != 0 {
		t.Error("def must not bind in intermediate or local scopes")
	}
	a.Release(sym)
	a.Release(val)
}

func TestEnvPutTargetsLocal(t *testing.T) {
	a := testArena(t)
	root := qsp.NewEnv(nil)
	child := qsp.NewEnv(root)

	sym := a.NewSym("l")
	val := a.NewNum(1)
	child.Put(a, sym, val)

	if child.Size() != 1 {
		t.Errorf("child bindings = %d, want 1", child.Size())
	}
	if root.Size() != 0 {
		t.Error("= must not leak into the outer scope")
	}
	a.Release(sym)
	a.Release(val)
}
