// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// verifyCommand checks that each input file parses, reporting a result per
// file and exiting nonzero if any file fails.
type verifyCommand struct {
	files  *[]string
	strict *bool
}

func (cmd *verifyCommand) run(c *kingpin.ParseContext) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	failed := 0
	for _, f := range *cmd.files {
		if err := cmd.verifyFile(f); err != nil {
			failed++
			_ = level.Error(logger).Log("file", f, "err", err)
			continue
		}
		_ = level.Info(logger).Log("file", f, "result", "ok")
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func (cmd *verifyCommand) verifyFile(name string) error {
	v, err := parseOptions(*cmd.strict, nil).ReadFile(name)
	if err != nil {
		return err
	}
	v.Release()
	return nil
}

func addVerifyCommand(app *kingpin.Application) {
	cmd := &verifyCommand{}
	verify := app.Command("verify", "Check that JSON documents parse.").Action(cmd.run)
	cmd.strict = verify.Flag("strict", "Reject comments in the input.").Bool()
	cmd.files = verify.Arg("file", "The files to check.").Required().ExistingFiles()
}
