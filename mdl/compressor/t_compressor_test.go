// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compressor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_comp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp01. polytropic head and discharge temperature")

	// closed-form check: 100 -> 300 kPa-a, 300 K, k=1.3, z=1
	// the formula is unit-agnostic provided the gas constant is consistent
	mratio := 0.3 / 1.3
	head, err := Head(100, 300, 1.0, mratio, 300, 96.3034)
	if err != nil {
		tst.Errorf("Head failed: %v\n", err)
		return
	}
	io.Pforan("head = %v\n", head)
	chk.Float64(tst, "head", 1e-3, head, 36126.19813862405)

	tdis, err := DischargeTemp(300, 3.0, mratio)
	if err != nil {
		tst.Errorf("DischargeTemp failed: %v\n", err)
		return
	}
	io.Pforan("tdis = %v\n", tdis)
	chk.Float64(tst, "tdis", 1e-6, tdis, 386.5682307692884)

	// idempotence
	head2, _ := Head(100, 300, 1.0, mratio, 300, 96.3034)
	tdis2, _ := DischargeTemp(300, 3.0, mratio)
	chk.Float64(tst, "head (repeated call)", 1e-17, head2, head)
	chk.Float64(tst, "tdis (repeated call)", 1e-17, tdis2, tdis)
}

func Test_comp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp02. head is strictly increasing in pressure ratio")

	mratio := 0.32 / 1.32
	pSuc := 800.0
	prev := 0.0
	for i := 1; i <= 40; i++ {
		pDis := pSuc * (1.0 + 0.1*float64(i))
		head, err := Head(pSuc, pDis, 0.95, mratio, 540, 96.3034)
		if err != nil {
			tst.Errorf("Head failed: %v\n", err)
			return
		}
		if head <= prev {
			tst.Errorf("head must be strictly increasing in pressure ratio: head(%g)=%g <= %g\n", pDis/pSuc, head, prev)
			return
		}
		prev = head
	}
}

func Test_comp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp03. efficiency and power")

	mratio := 0.32 / 1.32
	head, err := Head(800, 1200, 0.95, mratio, 540, 96.30368384965406)
	if err != nil {
		tst.Errorf("Head failed: %v\n", err)
		return
	}
	chk.Float64(tst, "head", 1e-6, head, 21049.07280325996)

	eta, err := Efficiency(head, 26990.0)
	if err != nil {
		tst.Errorf("Efficiency failed: %v\n", err)
		return
	}
	io.Pforan("eta = %v\n", eta)
	if eta <= 0 || eta > 1 {
		tst.Errorf("eta=%g must be within (0,1]\n", eta)
		return
	}

	pgas, err := GasPower(2.5e6, head)
	if err != nil {
		tst.Errorf("GasPower failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pgas", 1e-6, pgas, 1107.3796718886763)

	power, err := ConsumedPower(0.78, 2.5e6, head, 0.95)
	if err != nil {
		tst.Errorf("ConsumedPower failed: %v\n", err)
		return
	}
	chk.Float64(tst, "power", 1e-6, power, 1494.4395032235848)

	// zero denominator
	if _, err := Efficiency(head, 0); err == nil {
		tst.Errorf("Efficiency must fail with zero enthalpy rise\n")
		return
	}

	// out-of-range efficiency must be an error, not a returned value
	if _, err := Efficiency(head, head/2); err == nil {
		tst.Errorf("Efficiency must fail when the result exceeds one\n")
		return
	}
	if _, err := Efficiency(-head, 26990.0); err == nil {
		tst.Errorf("Efficiency must fail when the result is not positive\n")
		return
	}
}

func Test_comp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp04. invalid input")

	mratio := 0.32 / 1.32
	for i, call := range []func() (float64, error){
		func() (float64, error) { return Head(0, 1200, 0.95, mratio, 540, 96.3034) },
		func() (float64, error) { return Head(800, -1200, 0.95, mratio, 540, 96.3034) },
		func() (float64, error) { return Head(800, 1200, 0.95, mratio, 0, 96.3034) },
		func() (float64, error) { return Head(800, 1200, -0.95, mratio, 540, 96.3034) },
		func() (float64, error) { return Head(800, 1200, 0.95, 1.2, 540, 96.3034) },
		func() (float64, error) { return Head(800, 1200, 0.95, mratio, 540, 0) },
		func() (float64, error) { return DischargeTemp(-540, 1.5, mratio) },
		func() (float64, error) { return DischargeTemp(540, 0.8, mratio) },
		func() (float64, error) { return DischargeTemp(540, 1.5, 0) },
		func() (float64, error) { return PressureRatio(0, 1200) },
		func() (float64, error) { return PressureRatio(800, -1) },
		func() (float64, error) { return GasPower(-1, 21049.0) },
		func() (float64, error) { return ConsumedPower(0, 2.5e6, 21049.0, 0.95) },
		func() (float64, error) { return ConsumedPower(1.2, 2.5e6, 21049.0, 0.95) },
		func() (float64, error) { return ConsumedPower(0.78, 2.5e6, 21049.0, 0) },
		func() (float64, error) { return ConsumedPower(0.78, -2.5e6, 21049.0, 0.95) },
	} {
		if _, err := call(); err == nil {
			tst.Errorf("call %d must fail with invalid input\n", i)
			return
		}
	}
}

func Test_comp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("comp05. model bound to a gas")

	var mdl Model
	err := mdl.Init("methane", 0.95)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	head, err := mdl.Head(800, 1200, 0.95, 540)
	if err != nil {
		tst.Errorf("Head failed: %v\n", err)
		return
	}
	chk.Float64(tst, "head", 1e-6, head, 21049.07280325996)

	tdis, err := mdl.DischargeTemp(800, 1200, 540)
	if err != nil {
		tst.Errorf("DischargeTemp failed: %v\n", err)
		return
	}
	chk.Float64(tst, "tdis", 1e-6, tdis, 595.7753766559122)

	err = mdl.Init("methane", 1.5)
	if err == nil {
		tst.Errorf("Init must fail with mechanical efficiency greater than one\n")
		return
	}
	err = mdl.Init("helium", 0.95)
	if err == nil {
		tst.Errorf("Init must fail with unknown gas\n")
		return
	}
	io.Pf("expected error: %v\n", err)
}
