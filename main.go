// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/codyallen08/psig-compressor-course/inp"
	"github.com/codyallen08/psig-compressor-course/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/station01", ".sta", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nPsig Compressor Course -- Gas Compression Calculations\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read station
	dir, fn := filepath.Split(fnamepath)
	sta, err := inp.ReadSta(dir, fn)
	if err != nil {
		chk.Panic("cannot read station file:\n%v", err)
	}

	// evaluate and report
	res, err := sta.Evaluate()
	if err != nil {
		chk.Panic("station evaluation failed:\n%v", err)
	}
	out.Print(sta, res)
}
