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

// Share increments v's reference count and returns v. This is the "shallow
// copy" of spec §4.3: ownership is shared, not cloned.
func (a *Arena) Share(v *Value) *Value {
	if v == nil {
		return v
	}
	v.refs++
	return v
}

// Release decrements v's reference count. When it reaches zero, the value's
// owned resources are freed (child values released recursively, a lambda's
// captured environment released) and the cell is returned to the arena's
// free list.
func (a *Arena) Release(v *Value) {
	if v == nil {
		return
	}
	v.refs--
	if v.refs > 0 {
		return
	}
	switch v.kind {
	case SExpr, QExpr:
		for _, c := range v.children {
			a.Release(c)
		}
	case Fun:
		if v.lambda != nil {
			a.Release(v.lambda.formals)
			a.Release(v.lambda.body)
			v.lambda.env.release(a)
		}
	}
	_ = a.reclaim(v)
}

// DeepCopy produces a fresh value whose payload is recursively cloned. A
// lambda's captured environment is copied (a new map, each binding shared
// via Share), per spec §4.3/§4.4.
func (a *Arena) DeepCopy(v *Value) *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Num:
		return a.NewNum(v.num)
	case Str:
		nv := a.mustAcquire()
		nv.kind = Str
		nv.text = v.text
		nv.hash = v.hash
		nv.refs = 1
		return nv
	case Sym:
		return a.NewSym(v.text)
	case Err:
		return a.NewErr(v.text)
	case Undef:
		return a.mustAcquire()
	case Fun:
		if v.fn != nil {
			// Share the *builtin pointer itself, not a freshly allocated copy
			// of it: a builtin's identity is its registered implementation,
			// and IsEqual compares builtins by that pointer (print.go). Using
			// NewBuiltin here would allocate a distinct *builtin and make
			// equal(deep_copy(v), v) false for every builtin value (spec §8).
			nv := a.mustAcquire()
			nv.kind = Fun
			nv.fn = v.fn
			nv.hash = v.hash
			nv.refs = 1
			return nv
		}
		env := v.lambda.env.Copy(a)
		formals := a.DeepCopy(v.lambda.formals)
		body := a.DeepCopy(v.lambda.body)
		return a.NewLambda(env, formals, body)
	case SExpr, QExpr:
		children := make([]*Value, len(v.children))
		for i, c := range v.children {
			children[i] = a.DeepCopy(c)
		}
		nv := a.mustAcquire()
		nv.kind = v.kind
		nv.children = children
		nv.hash = v.hash
		nv.refs = 1
		return nv
	default:
		return a.mustAcquire()
	}
}
