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
	"log/slog"
	"testing"

	"github.com/Horusiath/qsp"
)

func testArena(t *testing.T) *qsp.Arena {
	t.Helper()
	return qsp.NewArena(slog.Default())
}

func TestArenaAcquireRelease(t *testing.T) {
	a := testArena(t)
	free0 := a.FreeCount()

	v := a.NewNum(42)
	if v.Refs() != 1 {
		t.Errorf("fresh value refs = %d, want 1", v.Refs())
	}
	if a.FreeCount() != free0-1 {
		t.Errorf("free count after acquire = %d, want %d", a.FreeCount(), free0-1)
	}
	a.Release(v)
	if a.FreeCount() != free0 {
		t.Errorf("free count after release = %d, want %d", a.FreeCount(), free0)
	}
}

func TestArenaGrows(t *testing.T) {
	a := testArena(t)
	initial := a.Len()
	for i := 0; i < initial+1; i++ {
		_ = a.NewNum(int64(i))
	}
	if a.Len() <= initial {
		t.Errorf("arena did not grow: len = %d, initial = %d", a.Len(), initial)
	}
}

func TestShareBumpsRefs(t *testing.T) {
	a := testArena(t)
	v := a.NewStr("hi")
	s := a.Share(v)
	if s != v {
		t.Fatal("Share must return the same pointer")
	}
	if v.Refs() != 2 {
		t.Errorf("refs after share = %d, want 2", v.Refs())
	}
	a.Release(v)
	if v.Refs() != 1 {
		t.Errorf("refs after one release = %d, want 1", v.Refs())
	}
	a.Release(v)
}

func TestReleaseRecursesIntoChildren(t *testing.T) {
	a := testArena(t)
	free0 := a.FreeCount()
	child := a.NewNum(1)
	list := a.NewQExpr(child)
	a.Release(list)
	if a.FreeCount() != free0 {
		t.Errorf("free count after releasing list = %d, want %d (child should be freed too)", a.FreeCount(), free0)
	}
}

func TestDeepCopyIsEqualButDistinct(t *testing.T) {
	a := testArena(t)
	v := a.NewQExpr(a.NewNum(1), a.NewStr("x"))
	cp := a.DeepCopy(v)
	if cp == v {
		t.Fatal("DeepCopy must return a distinct value")
	}
	if !qsp.IsEqual(v, cp) {
		t.Error("DeepCopy(v) must be structurally equal to v")
	}
	a.Release(v)
	a.Release(cp)
}
