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

import "log/slog"

// InitialArenaCapacity is the number of cells the Arena starts with.
const InitialArenaCapacity = 1000

// ArenaCeiling is the hard ceiling on the number of cells the Arena will
// ever hold. Allocation beyond it fails with ErrOutOfMemory.
const ArenaCeiling = 100000

// Arena hands out Value cells and reclaims them once their reference count
// drops to zero. Cell addresses (the position returned by a given *Value)
// are stable for the lifetime of the process: growth only appends new
// cells, it never relocates existing ones.
//
// The arena is single-threaded, matching the evaluator's single-threaded
// execution model (spec §5); it performs no locking.
type Arena struct {
	cells   []*Value
	cursor  int
	ceiling int
	log     *slog.Logger
}

// NewArena creates an arena with the initial capacity and a ceiling of
// ArenaCeiling cells.
func NewArena(log *slog.Logger) *Arena {
	if log == nil {
		log = slog.Default()
	}
	a := &Arena{ceiling: ArenaCeiling, log: log}
	a.grow(InitialArenaCapacity)
	return a
}

func (a *Arena) grow(newCap int) error {
	if newCap > a.ceiling {
		newCap = a.ceiling
	}
	if newCap <= len(a.cells) {
		return ErrOutOfMemory{Ceiling: a.ceiling}
	}
	for i := len(a.cells); i < newCap; i++ {
		a.cells = append(a.cells, &Value{kind: Undef, addr: i})
	}
	a.log.Debug("arena grown", "capacity", len(a.cells))
	return nil
}

// Acquire returns a cell whose kind is Undef, growing the pool (doubling)
// if none is free. It fails with ErrOutOfMemory if growth would exceed the
// ceiling.
func (a *Arena) Acquire() (*Value, error) {
	cell := a.nextFree()
	if cell == nil {
		newCap := len(a.cells) * 2
		if newCap == 0 {
			newCap = InitialArenaCapacity
		}
		if err := a.grow(newCap); err != nil {
			return nil, err
		}
		cell = a.nextFree()
		if cell == nil {
			return nil, ErrOutOfMemory{Ceiling: a.ceiling}
		}
	}
	return cell, nil
}

// nextFree performs a linear scan from the cursor for the next Undef cell.
func (a *Arena) nextFree() *Value {
	for i := a.cursor; i < len(a.cells); i++ {
		if a.cells[i].kind == Undef {
			a.cursor = i
			return a.cells[i]
		}
	}
	return nil
}

// reclaim returns a cell whose refs have already dropped to zero to the
// free list. If the cell sits at a lower address than the current free
// cursor, the cursor is moved back to it, biasing allocation toward
// low-address cells and keeping the linear free scan short.
func (a *Arena) reclaim(cell *Value) error {
	if cell.refs != 0 {
		return ErrBadRelease{Refs: cell.refs}
	}
	cell.kind = Undef
	cell.text = ""
	cell.children = nil
	cell.fn = nil
	cell.lambda = nil
	cell.num = 0
	cell.hash = 0
	if cell.addr < a.cursor {
		a.cursor = cell.addr
	}
	return nil
}

// Len returns the number of cells currently held by the arena (used plus
// free).
func (a *Arena) Len() int { return len(a.cells) }

// FreeCount returns the number of Undef cells currently in the arena. It is
// used by tests to check the §8 free-list invariant.
func (a *Arena) FreeCount() int {
	n := 0
	for _, c := range a.cells {
		if c.kind == Undef {
			n++
		}
	}
	return n
}
