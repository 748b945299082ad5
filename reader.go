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

import (
	"strconv"

	"github.com/Horusiath/qsp/syntax"
)

// Read walks a parser tree (produced by the external, black-box syntax
// package) and converts it into a Value, per spec §4.5. It delegates all
// lexical/grammar decisions to syntax.Parse; Read only knows how to turn
// already-tagged nodes into values.
func (a *Arena) Read(n *syntax.Node) *Value {
	switch n.Tag {
	case syntax.TagNumber:
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return a.NewErr("invalid number")
		}
		return a.NewNum(i)
	case syntax.TagSymbol:
		return a.NewSym(n.Text)
	case syntax.TagString:
		return a.NewStr(n.Text)
	case syntax.TagSExpr, syntax.TagProgram:
		return a.readList(n, a.NewSExpr())
	case syntax.TagQExpr:
		return a.readList(n, a.NewQExpr())
	default:
		// Comments and punctuation never reach here directly; Read is only
		// called on top-level or list-member nodes, both of which skip them
		// in readList.
		return a.NewErrf("cannot read node of tag %q", n.Tag)
	}
}

func (a *Arena) readList(n *syntax.Node, list *Value) *Value {
	for _, child := range n.Children {
		if child.IsPunct() || child.Tag == syntax.TagComment {
			continue
		}
		list.Add(a.Read(child))
	}
	return list
}

// ReadProgram parses src with the syntax package and reads every top-level
// form into a slice of owned Values, one per form. On a parse error it
// returns the error unchanged (callers turn it into a language-level Err,
// e.g. `load` does).
func ReadProgram(a *Arena, src string) ([]*Value, error) {
	root, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}
	forms := make([]*Value, 0, len(root.Children))
	for _, child := range root.Children {
		if child.IsPunct() || child.Tag == syntax.TagComment {
			continue
		}
		forms = append(forms, a.Read(child))
	}
	return forms, nil
}
