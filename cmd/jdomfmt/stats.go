// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"

	"github.com/wernsey/jdom"
)

// statsCommand prints a breakdown of each document's contents.
type statsCommand struct {
	files  *[]string
	strict *bool
}

// docStats counts the nodes of a document by kind.
type docStats struct {
	objects, arrays, strings, numbers, booleans, nulls int
	maxDepth                                           int
}

func (s *docStats) total() int {
	return s.objects + s.arrays + s.strings + s.numbers + s.booleans + s.nulls
}

func (cmd *statsCommand) run(c *kingpin.ParseContext) error {
	for _, f := range *cmd.files {
		cmd.printStats(f)
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) {
	fi, err := os.Stat(name)
	if err != nil {
		exitWithErr(pkgerrors.Wrapf(err, "%s", name))
	}
	pool := &jdom.Pool{}
	v, err := parseOptions(*cmd.strict, pool).ReadFile(name)
	if err != nil {
		exitWithErr(pkgerrors.Wrapf(err, "%s", name))
	}
	defer v.Release()

	var stats docStats
	walk(v, 1, &stats)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf("\tsize: %v, nodes: %d, max depth: %d\n",
		humanize.Bytes(uint64(fi.Size())), stats.total(), stats.maxDepth)
	fmt.Printf("\tobjects: %d, arrays: %d, strings: %d, numbers: %d, booleans: %d, nulls: %d\n",
		stats.objects, stats.arrays, stats.strings, stats.numbers, stats.booleans, stats.nulls)
	fmt.Printf("\tdistinct strings: %d\n", pool.Len())
}

func walk(v *jdom.Value, depth int, stats *docStats) {
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}
	switch v.Kind() {
	case jdom.KindObject:
		stats.objects++
		for key, ok := v.FirstKey(); ok; key, ok = v.NextKey(key) {
			walk(v.Get(key), depth+1, stats)
		}
	case jdom.KindArray:
		stats.arrays++
		for i := 0; i < v.Len(); i++ {
			walk(v.At(i), depth+1, stats)
		}
	case jdom.KindString:
		stats.strings++
	case jdom.KindNumber:
		stats.numbers++
	case jdom.KindTrue, jdom.KindFalse:
		stats.booleans++
	default:
		stats.nulls++
	}
}

func addStatsCommand(app *kingpin.Application) {
	cmd := &statsCommand{}
	stats := app.Command("stats", "Print a content breakdown per document.").Action(cmd.run)
	cmd.strict = stats.Flag("strict", "Reject comments in the input.").Bool()
	cmd.files = stats.Arg("file", "The files to inspect.").Required().ExistingFiles()
}
