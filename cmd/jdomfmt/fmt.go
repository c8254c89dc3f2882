// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/wernsey/jdom"
)

// fmtCommand rewrites each input file as canonical JSON on stdout.
type fmtCommand struct {
	files   *[]string
	compact *bool
	strict  *bool
	write   *bool
}

func (cmd *fmtCommand) run(c *kingpin.ParseContext) error {
	for _, f := range *cmd.files {
		cmd.formatFile(f)
	}
	return nil
}

func (cmd *fmtCommand) formatFile(name string) {
	v, err := parseOptions(*cmd.strict, nil).ReadFile(name)
	if err != nil {
		exitWithErr(pkgerrors.Wrapf(err, "%s", name))
	}
	defer v.Release()

	opts := jdom.MarshalOptions{Multiline: !*cmd.compact}
	if *cmd.write {
		if err := opts.WriteFile(name, v); err != nil {
			exitWithErr(err)
		}
		return
	}
	out := opts.Marshal(v)
	fmt.Printf("%s\n", out)
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{}
	format := app.Command("fmt", "Reformat JSON documents.").Action(cmd.run)
	cmd.compact = format.Flag("compact", "Emit compact instead of indented output.").Short('c').Bool()
	cmd.strict = format.Flag("strict", "Reject comments in the input.").Bool()
	cmd.write = format.Flag("write", "Rewrite each file in place instead of printing.").Short('w').Bool()
	cmd.files = format.Arg("file", "The files to reformat.").Required().ExistingFiles()
}
