//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of qsp.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

// Package main provides the qsp command-line interpreter: a REPL over the
// S-expression language implemented by the qsp/eval/builtins packages.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Horusiath/qsp"
	"github.com/Horusiath/qsp/builtins"
	"github.com/Horusiath/qsp/eval"
)

var (
	logLevel  string
	forceRepl bool
)

func main() {
	root := &cobra.Command{
		Use:   "qsp [file...]",
		Short: "qsp is a small Lisp-like interpreter",
		RunE:  run,
	}
	root.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&forceRepl, "repl", false, "enter the REPL after loading any given files")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)}))

	a := qsp.NewArena(log)
	env := qsp.NewEnv(nil)
	builtins.BindAll(a, env)

	if len(args) > 0 {
		loadFiles(a, env, args)
		if !forceRepl {
			return nil
		}
	}

	repl(a, env)
	return nil
}

func loadFiles(a *qsp.Arena, env *qsp.Env, paths []string) {
	for _, path := range paths {
		sym := a.NewSym("load")
		str := a.NewStr(path)
		argList := a.NewSExpr(str)
		loadFn := env.Get(a, sym)
		a.Release(sym)
		if loadFn.Kind() == qsp.Err {
			fmt.Fprintln(os.Stderr, loadFn.String())
			a.Release(loadFn)
			a.Release(argList)
			continue
		}
		result := eval.Apply(a, env, loadFn, argList)
		a.Release(loadFn)
		if result.Kind() == qsp.Err {
			fmt.Fprintln(os.Stderr, result.String())
		}
		a.Release(result)
	}
}

func repl(a *qsp.Arena, env *qsp.Env) {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("qsp> ")
		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}

		forms, perr := qsp.ReadProgram(a, line)
		if perr != nil {
			fmt.Println(perr)
			if err == io.EOF {
				return
			}
			continue
		}
		for _, form := range forms {
			result := eval.Eval(a, env, form)
			fmt.Println(result.String())
			a.Release(result)
		}
		if err == io.EOF {
			return
		}
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
