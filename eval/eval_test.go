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

package eval_test

import (
	"log/slog"
	"testing"

	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins"
	"github.com/Horusiath/qsp/eval"
)

func newTestEnv(t *testing.T) (*qsp.Arena, *qsp.Env) {
	t.Helper()
	a := qsp.NewArena(slog.Default())
	env := qsp.NewEnv(nil)
	builtins.BindAll(a, env)
	return a, env
}

func evalSrc(t *testing.T, a *qsp.Arena, env *qsp.Env, src string) *qsp.Value {
	t.Helper()
	forms, err := qsp.ReadProgram(a, src)
	if err != nil {
		t.Fatalf("ReadProgram(%q): %v", src, err)
	}
	var last *qsp.Value
	for _, f := range forms {
		if last != nil {
			a.Release(last)
		}
		last = eval.Eval(a, env, f)
	}
	return last
}

func TestEvalArithmetic(t *testing.T) {
	a, env := newTestEnv(t)
	result := evalSrc(t, a, env, `(+ 1 2 3)`)
	if result.Kind() != qsp.Num || result.Num() != 6 {
		t.Errorf("(+ 1 2 3) = %v, want Num 6", result)
	}
	a.Release(result)
}

func TestEvalDefThenUse(t *testing.T) {
	a, env := newTestEnv(t)
	result := evalSrc(t, a, env, `(def {x} 10) (+ x 5)`)
	if result.Kind() != qsp.Num || result.Num() != 15 {
		t.Errorf("got %v, want Num 15", result)
	}
	a.Release(result)
}

func TestEvalLambdaFullApplication(t *testing.T) {
	a, env := newTestEnv(t)
	result := evalSrc(t, a, env, `((\ {x y} {+ x y}) 3 4)`)
	if result.Kind() != qsp.Num || result.Num() != 7 {
		t.Errorf("got %v, want Num 7", result)
	}
	a.Release(result)
}

func TestEvalPartialApplication(t *testing.T) {
	a, env := newTestEnv(t)
	result := evalSrc(t, a, env,
		`(def {add} (\ {x y} {+ x y})) (def {inc} (add 1)) (inc 9)`)
	if result.Kind() != qsp.Num || result.Num() != 10 {
		t.Errorf("got %v, want Num 10", result)
	}
	a.Release(result)
}

func TestEvalVariadicLambda(t *testing.T) {
	a, env := newTestEnv(t)
	result := evalSrc(t, a, env, `(def {f} (\ {& xs} {xs})) (f 1 2 3)`)
	if result.Kind() != qsp.QExpr || result.String() != "{1 2 3}" {
		t.Errorf("(f 1 2 3) = %v, want {1 2 3}", result)
	}
	a.Release(result)

	result2 := evalSrc(t, a, env, `(f)`)
	if result2.Kind() != qsp.QExpr || result2.String() != "{}" {
		t.Errorf("(f) = %v, want {} (formals must not be drained by the first call)", result2)
	}
	a.Release(result2)
}

func TestEvalErrorPropagation(t *testing.T) {
	a, env := newTestEnv(t)

	r1 := evalSrc(t, a, env, `(head {})`)
	if r1.Kind() != qsp.Err {
		t.Errorf("(head {}) = %v, want Err", r1)
	}
	a.Release(r1)

	r2 := evalSrc(t, a, env, `(+ 1 (/ 1 0))`)
	if r2.Kind() != qsp.Err || r2.String() != "Error: Division by zero!" {
		t.Errorf("(+ 1 (/ 1 0)) = %v, want Error: Division by zero!", r2)
	}
	a.Release(r2)
}

func TestEvalListLaws(t *testing.T) {
	a, env := newTestEnv(t)

	cases := []struct{ src, want string }{
		{`(eval (list + 1 2))`, "3"},
		{`(cons 1 {2 3})`, "{1 2 3}"},
		{`(join {1} {2 3})`, "{1 2 3}"},
		{`(head {1 2 3})`, "{1}"},
		{`(tail {1 2 3})`, "{2 3}"},
		{`(init {1 2 3})`, "{1 2}"},
		{`(if 1 {1} {0})`, "1"},
		{`(if 0 {1} {0})`, "0"},
	}
	for _, c := range cases {
		result := evalSrc(t, a, env, c.src)
		if result.String() != c.want {
			t.Errorf("%s = %v, want %s", c.src, result, c.want)
		}
		a.Release(result)
	}
}
