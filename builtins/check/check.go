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

// Package check provides the argument-checking helpers shared by the
// builtin subpackages (arith, equiv, list, define, cond, ioop). It is
// separate from the builtins package itself so that those subpackages can
// depend on it without creating an import cycle through the prelude
// aggregator in builtins/prelude.go.
package check

import "github.com/Horusiath/qsp"

// CheckCount returns an Err and releases args if args does not hold exactly
// want children; otherwise it returns nil and the caller proceeds.
func CheckCount(a *qsp.Arena, fname string, args *qsp.Value, want int) *qsp.Value {
	if args.Len() != want {
		got := args.Len()
		a.Release(args)
		return a.NewErrf("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", fname, got, want)
	}
	return nil
}

// CheckMinCount returns an Err and releases args if args holds fewer than
// min children.
func CheckMinCount(a *qsp.Arena, fname string, args *qsp.Value, min int) *qsp.Value {
	if args.Len() < min {
		got := args.Len()
		a.Release(args)
		return a.NewErrf("Function '%s' passed incorrect number of arguments. Got %d, expected at least %d.", fname, got, min)
	}
	return nil
}

// CheckType returns an Err and releases args if the i'th child of args is
// not of the given kind.
func CheckType(a *qsp.Arena, fname string, args *qsp.Value, i int, kind qsp.Kind) *qsp.Value {
	c := args.Children()[i]
	if c.Kind() != kind {
		got := c.Kind()
		a.Release(args)
		return a.NewErrf("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", fname, i, got, kind)
	}
	return nil
}

// CheckNonEmpty returns an Err and releases args if the i'th child of args
// (a list value) is empty. The error text embeds the printed argument, per
// spec.md §8 scenario 6 ("Function 'head' passed {} for argument 0.").
func CheckNonEmpty(a *qsp.Arena, fname string, args *qsp.Value, i int) *qsp.Value {
	c := args.Children()[i]
	if c.Len() == 0 {
		printed := c.String()
		a.Release(args)
		return a.NewErrf("Function '%s' passed %s for argument %d.", fname, printed, i)
	}
	return nil
}
