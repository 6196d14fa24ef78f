// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compressor implements centrifugal compressor stage formulas
package compressor

import (
	"math"

	"github.com/codyallen08/psig-compressor-course/mdl/gas"
	"github.com/cpmech/gosl/chk"
)

// PressureRatio computes the ratio of discharge to suction absolute pressure
func PressureRatio(pSuc, pDis float64) (pratio float64, err error) {
	if pSuc <= 0 {
		return 0, chk.Err("pressure ratio: suction pressure must be positive. pSuc=%g is invalid", pSuc)
	}
	if pDis <= 0 {
		return 0, chk.Err("pressure ratio: discharge pressure must be positive. pDis=%g is invalid", pDis)
	}
	return pDis / pSuc, nil
}

// Head computes the polytropic compressor head (GPNO / GPH)
//  Input:
//   pSuc   -- suction pressure [psia]
//   pDis   -- discharge pressure [psia]
//   zAvg   -- average compressibility factor [1]
//   mratio -- (k-1)/k, where k = specific heat ratio [1]
//   tSuc   -- suction temperature [degR]
//   rgas2  -- specific gas constant [ft・lbf/(lbm・degR)]
//  Output:
//   head [ft・lbf/lbm]
func Head(pSuc, pDis, zAvg, mratio, tSuc, rgas2 float64) (head float64, err error) {
	if pSuc <= 0 || pDis <= 0 {
		return 0, chk.Err("head: pressures must be positive. pSuc=%g, pDis=%g are invalid", pSuc, pDis)
	}
	if tSuc <= 0 {
		return 0, chk.Err("head: suction temperature must be positive. tSuc=%g is invalid", tSuc)
	}
	if zAvg <= 0 {
		return 0, chk.Err("head: compressibility factor must be positive. zAvg=%g is invalid", zAvg)
	}
	if mratio <= 0 || mratio >= 1 {
		return 0, chk.Err("head: mratio=(k-1)/k must be within (0,1). mratio=%g is invalid", mratio)
	}
	if rgas2 <= 0 {
		return 0, chk.Err("head: gas constant must be positive. rgas2=%g is invalid", rgas2)
	}
	return zAvg / mratio * tSuc * rgas2 * (math.Pow(pDis/pSuc, mratio) - 1.0), nil
}

// DischargeTemp estimates the discharge temperature of a polytropic compression
//  Input:
//   tSuc   -- suction temperature [degR]
//   pratio -- pressure ratio pDis/pSuc [1]
//   mratio -- (k-1)/k [1]
//  Output:
//   tDis [degR]
func DischargeTemp(tSuc, pratio, mratio float64) (tDis float64, err error) {
	if tSuc <= 0 {
		return 0, chk.Err("discharge temperature: suction temperature must be positive. tSuc=%g is invalid", tSuc)
	}
	if pratio < 1 {
		return 0, chk.Err("discharge temperature: pressure ratio must be at least one for compression. pratio=%g is invalid", pratio)
	}
	if mratio <= 0 || mratio >= 1 {
		return 0, chk.Err("discharge temperature: mratio=(k-1)/k must be within (0,1). mratio=%g is invalid", mratio)
	}
	return tSuc * math.Pow(pratio, mratio), nil
}

// Efficiency computes the polytropic efficiency from the ideal head and the
// actual enthalpy rise (both per unit mass, same units)
//  Input:
//   head -- polytropic head [ft・lbf/lbm]
//   dh   -- actual enthalpy rise [ft・lbf/lbm]
//  Output:
//   eta within (0,1]
func Efficiency(head, dh float64) (eta float64, err error) {
	if dh == 0 {
		return 0, chk.Err("efficiency: enthalpy rise must be nonzero")
	}
	eta = head / dh
	if eta <= 0 || eta > 1 {
		return 0, chk.Err("efficiency: eta=%g is outside (0,1]. head=%g and dh=%g are inconsistent", eta, head, dh)
	}
	return
}

// GasPower computes the power delivered to the gas for one operating point.
// The 86400 factor converts flow to [lbm/sec] and the 550 factor converts
// [ft・lbf/s] to horsepower.
//  Input:
//   massflow -- mass flow through compressor [lbm/day]
//   head     -- compressor head [ft・lbf/lbm]
//  Output:
//   power [hp]
func GasPower(massflow, head float64) (power float64, err error) {
	if massflow < 0 {
		return 0, chk.Err("gas power: mass flow must not be negative. massflow=%g is invalid", massflow)
	}
	return massflow * head / (86400.0 * 550.0), nil
}

// ConsumedPower computes the actual power consumed by the compressor for one
// operating point
//  Input:
//   eta      -- compressor efficiency (0,1]
//   massflow -- mass flow through compressor [lbm/day]
//   head     -- compressor head [ft・lbf/lbm]
//   mechEff  -- mechanical train efficiency (0,1]
//  Output:
//   power [hp]
func ConsumedPower(eta, massflow, head, mechEff float64) (power float64, err error) {
	if eta <= 0 || eta > 1 {
		return 0, chk.Err("consumed power: efficiency must be within (0,1]. eta=%g is invalid", eta)
	}
	if mechEff <= 0 || mechEff > 1 {
		return 0, chk.Err("consumed power: mechanical efficiency must be within (0,1]. mechEff=%g is invalid", mechEff)
	}
	if massflow < 0 {
		return 0, chk.Err("consumed power: mass flow must not be negative. massflow=%g is invalid", massflow)
	}
	return 1.0 / (mechEff * eta * 86400.0 * 550.0) * massflow * head, nil
}

// Model binds a gas to the stage formulas so that the gas properties are set
// once and reused for every call (the gas is never modified)
type Model struct {
	Gas     *gas.Model // gas properties
	MechEff float64    // mechanical train efficiency (0,1]
}

// Init initialises this structure with a gas from the database
func (o *Model) Init(gasName string, mechEff float64) (err error) {
	o.Gas, err = gas.New(gasName)
	if err != nil {
		return
	}
	if mechEff <= 0 || mechEff > 1 {
		return chk.Err("compressor model: mechanical efficiency must be within (0,1]. mechEff=%g is invalid", mechEff)
	}
	o.MechEff = mechEff
	return
}

// Head computes the polytropic head using the bound gas properties
func (o Model) Head(pSuc, pDis, zAvg, tSuc float64) (float64, error) {
	return Head(pSuc, pDis, zAvg, o.Gas.Mratio(), tSuc, o.Gas.Rgas2)
}

// DischargeTemp estimates the discharge temperature using the bound gas properties
func (o Model) DischargeTemp(pSuc, pDis, tSuc float64) (float64, error) {
	pratio, err := PressureRatio(pSuc, pDis)
	if err != nil {
		return 0, err
	}
	return DischargeTemp(tSuc, pratio, o.Gas.Mratio())
}

// ConsumedPower computes the consumed power using the bound mechanical efficiency
func (o Model) ConsumedPower(eta, massflow, head float64) (float64, error) {
	return ConsumedPower(eta, massflow, head, o.MechEff)
}
