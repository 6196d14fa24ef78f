// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sta01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sta01. read station file and evaluate")

	sta, err := ReadSta("data", "station01.sta")
	if err != nil {
		tst.Errorf("ReadSta failed: %v\n", err)
		return
	}
	io.Pforan("%v (gas: %v)\n", sta.Desc, sta.Gas.Name)
	chk.IntAssert(len(sta.Points), 3)
	chk.StrAssert(sta.GasName, "methane")
	chk.Float64(tst, "mecheff", 1e-15, sta.MechEff, 0.95)
	chk.Float64(tst, "rgas2", 1e-12, sta.Gas.Rgas2, 96.30368384965406)

	res, err := sta.Evaluate()
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.IntAssert(len(res), 3)

	r := res[0]
	io.Pforan("tag=%d head=%v tdis=%v eta=%v mass=%v power=%v\n", r.Tag, r.Head.V, r.Tdis.V, r.Eta.V, r.Mass.V, r.Power.V)
	chk.Float64(tst, "pratio", 1e-15, r.Pratio.V, 1.5)
	chk.Float64(tst, "zavg", 1e-9, r.Zavg.V, 0.8940890771402473)
	chk.Float64(tst, "head", 1e-5, r.Head.V, 19810.259028762714)
	chk.Float64(tst, "tdis", 1e-6, r.Tdis.V, 595.7753766559122)
	chk.Float64(tst, "eta", 1e-9, r.Eta.V, 0.7619330395677967)
	chk.Float64(tst, "mass", 1e-4, r.Mass.V, 6973565.7767076)
	chk.Float64(tst, "pgas", 1e-5, r.Pgas.V, 2907.1579206795536)
	chk.Float64(tst, "power", 1e-5, r.Power.V, 4016.319116480542)
	chk.StrAssert(r.Head.Units, "ft*lbf/lbm")
	chk.StrAssert(r.Tdis.Units, "degR")
	chk.StrAssert(r.Power.Units, "hp")

	// point without measured enthalpy rise: ideal efficiency
	r2 := res[1]
	chk.Float64(tst, "eta (no dh)", 1e-15, r2.Eta.V, 1.0)
	chk.Float64(tst, "head (tag 2)", 1e-5, r2.Head.V, 15484.47935752597)

	// evaluation is idempotent
	resb, err := sta.Evaluate()
	if err != nil {
		tst.Errorf("Evaluate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "head (repeated evaluation)", 1e-17, resb[0].Head.V, r.Head.V)
}

func Test_sta02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sta02. invalid station files")

	_, err := ReadSta("data", "station02-bad.sta")
	if err == nil {
		tst.Errorf("ReadSta must fail with negative suction pressure\n")
		return
	}
	io.Pf("expected error: %v\n", err)

	_, err = ReadSta("data", "does-not-exist.sta")
	if err == nil {
		tst.Errorf("ReadSta must fail with missing file\n")
		return
	}
}

func Test_sta03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sta03. validation of operating points")

	sta := &Station{
		Desc:    "invalid points",
		MechEff: 1.0,
		Points:  []*OpPoint{{Tag: 1, Psuc: 800, Pdis: 700, Tsuc: 540, Q: 2000}},
	}
	if err := sta.Validate(); err == nil {
		tst.Errorf("Validate must fail when discharge pressure is not greater than suction pressure\n")
		return
	}

	sta.Points[0].Pdis = 1200
	sta.Points[0].Tsuc = 0
	if err := sta.Validate(); err == nil {
		tst.Errorf("Validate must fail with zero suction temperature\n")
		return
	}

	sta.Points[0].Tsuc = 540
	sta.Points[0].Q = -1
	if err := sta.Validate(); err == nil {
		tst.Errorf("Validate must fail with negative flow\n")
		return
	}

	sta.Points[0].Q = 2000
	sta.MechEff = 1.2
	if err := sta.Validate(); err == nil {
		tst.Errorf("Validate must fail with mechanical efficiency greater than one\n")
		return
	}
}
