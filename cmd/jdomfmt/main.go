// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jdomfmt reformats, verifies and inspects JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/wernsey/jdom"
)

func main() {
	app := kingpin.New("jdomfmt", "Reformat, verify and inspect JSON documents.")
	addFmtCommand(app)
	addVerifyCommand(app)
	addStatsCommand(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// parseOptions builds the options shared by the subcommands: strict mode
// rejects comments, and reporting is left to each command's own output.
func parseOptions(strict bool, pool *jdom.Pool) jdom.ParseOptions {
	return jdom.ParseOptions{
		RejectComments: strict,
		Pool:           pool,
		Report:         func(int, string) {},
	}
}
