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

// hashListSeed is the starting value for the polynomial rolling hash over a
// list's child hashes (spec §3).
const hashListSeed uint32 = 31

// hashNum computes the Knuth multiplicative hash of a 64-bit integer.
func hashNum(n int64) uint32 {
	const knuth uint32 = 2654435761
	return uint32(n) * knuth
}

// hashText computes the polynomial rolling hash (h = 31*h + c) over the
// bytes of s, used for Str, Sym, and Err payloads.
func hashText(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}
	return h
}

// hashBuiltin hashes a builtin's identity (its registered name stands in for
// the opaque function pointer).
func hashBuiltin(name string) uint32 {
	return hashText(name) ^ 0x5bd1e995
}

// hashLambda computes the XOR of a lambda's formals' and body's hashes.
func hashLambda(formals, body *Value) uint32 {
	return formals.hash ^ body.hash
}

// hashList computes the polynomial rolling hash over a list's child hashes,
// starting from hashListSeed.
func hashList(children []*Value) uint32 {
	h := hashListSeed
	for _, c := range children {
		h = 31*h + c.hash
	}
	return h
}
