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

func TestReadProgramBasic(t *testing.T) {
	a := testArena(t)
	forms, err := qsp.ReadProgram(a, `(+ 1 2) {a b}`)
	if err != nil {
		t.Fatalf("ReadProgram error: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	if forms[0].Kind() != qsp.SExpr || forms[0].String() != "(+ 1 2)" {
		t.Errorf("forms[0] = %v, want (+ 1 2)", forms[0])
	}
	if forms[1].Kind() != qsp.QExpr || forms[1].String() != "{a b}" {
		t.Errorf("forms[1] = %v, want {a b}", forms[1])
	}
	for _, f := range forms {
		a.Release(f)
	}
}

func TestReadProgramInvalidNumber(t *testing.T) {
	a := testArena(t)
	// A lexically valid number token that overflows int64 should read as an
	// Err value, not a Go panic.
	forms, err := qsp.ReadProgram(a, `99999999999999999999999999`)
	if err != nil {
		t.Fatalf("ReadProgram error: %v", err)
	}
	if len(forms) != 1 || forms[0].Kind() != qsp.Err {
		t.Fatalf("got %v, want a single Err value", forms)
	}
	a.Release(forms[0])
}

func TestReadProgramParseError(t *testing.T) {
	a := testArena(t)
	_, err := qsp.ReadProgram(a, `(+ 1 2`)
	if err == nil {
		t.Fatal("unterminated sexpr must be a parse error")
	}
}
