// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting of station evaluation results
package out

import (
	"github.com/codyallen08/psig-compressor-course/ana"
	"github.com/codyallen08/psig-compressor-course/inp"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Report returns a table with the results of a station evaluation
func Report(sta *inp.Station, res []*inp.OpResult) (l string) {
	l += io.Sf("%s (gas: %s)\n", sta.Desc, sta.Gas.Name)
	l += io.Sf("%4s%10s%10s%16s%12s%8s%16s%12s%12s\n",
		"tag", "p2/p1", "zavg", "head", "tdis", "eta", "mass", "pgas", "power")
	l += io.Sf("%4s%10s%10s%16s%12s%8s%16s%12s%12s\n",
		"", "[1]", "[1]", "[ft*lbf/lbm]", "[degR]", "[1]", "[lbm/day]", "[hp]", "[hp]")
	for _, r := range res {
		l += io.Sf("%4d%10.4f%10.4f%16.1f%12.1f%8.3f%16.0f%12.1f%12.1f\n",
			r.Tag, r.Pratio.V, r.Zavg.V, r.Head.V, r.Tdis.V, r.Eta.V, r.Mass.V, r.Pgas.V, r.Power.V)
	}
	return
}

// Print prints the results of a station evaluation
func Print(sta *inp.Station, res []*inp.OpResult) {
	io.Pf("%s", Report(sta, res))
}

// PlotHeadCurve plots head and discharge temperature against pressure ratio
// for the suction conditions of one operating point
func PlotHeadCurve(dirout, fnkey string, sta *inp.Station, pt *inp.OpPoint, zavg, maxratio float64, np int) {
	var proc ana.PolytropicCompression
	proc.Init(dbf.Params{
		&dbf.P{N: "p1", V: pt.Psuc},
		&dbf.P{N: "t1", V: pt.Tsuc},
		&dbf.P{N: "z", V: zavg},
		&dbf.P{N: "k", V: sta.Gas.K},
		&dbf.P{N: "r", V: sta.Gas.Rgas2},
	})
	proc.Plot(dirout, fnkey, maxratio, np)
}
