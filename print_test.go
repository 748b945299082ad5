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

func TestPrintKinds(t *testing.T) {
	a := testArena(t)
	tests := []struct {
		v    *qsp.Value
		want string
	}{
		{a.NewNum(-3), "-3"},
		{a.NewStr("a\nb"), `"a\nb"`},
		{a.NewSym("foo"), "foo"},
		{a.NewErr("bad"), "Error: bad"},
		{a.NewSExpr(a.NewNum(1), a.NewNum(2)), "(1 2)"},
		{a.NewQExpr(a.NewNum(1), a.NewNum(2)), "{1 2}"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
		a.Release(tc.v)
	}
}

func TestIsEqualStructural(t *testing.T) {
	a := testArena(t)
	x := a.NewQExpr(a.NewNum(1), a.NewStr("a"))
	y := a.NewQExpr(a.NewNum(1), a.NewStr("a"))
	z := a.NewQExpr(a.NewNum(2))

	if !qsp.IsEqual(x, y) {
		t.Error("structurally identical lists must be IsEqual")
	}
	if qsp.IsEqual(x, z) {
		t.Error("structurally different lists must not be IsEqual")
	}
	a.Release(x)
	a.Release(y)
	a.Release(z)
}

func TestIsEqualTypeMismatch(t *testing.T) {
	a := testArena(t)
	n := a.NewNum(1)
	s := a.NewStr("1")
	if qsp.IsEqual(n, s) {
		t.Error("values of different kinds must never be IsEqual")
	}
	a.Release(n)
	a.Release(s)
}
