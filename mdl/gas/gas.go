// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements models for natural gas properties
package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants: standard conditions and known values (US customary units)
const (
	Pb       = 14.696 // standard (base) pressure [psia]
	Tb       = 520.0  // standard (base) temperature [degR]
	Kf       = 77.54  // general flow equation constant (GPH eq 2.2)
	Runiv    = 10.73  // universal gas constant [psia・ft³/(lbmol・degR)]
	Mair     = 28.97  // molecular weight of air [lbm/lbmol]
	Mmethane = 16.043 // molecular weight of methane [lbm/lbmol]
)

// Model holds the properties of a gas. The two specific gas constants express
// the same quantity in different physical units. All fields are set by Init
// and must not be modified afterwards.
type Model struct {

	// input
	Name string  // name of gas in database; e.g. "methane"
	SG   float64 // specific gravity (relative to air) [1]
	M    float64 // molecular weight [lbm/lbmol]
	K    float64 // specific heat ratio cp/cv [1]

	// derived
	Rgas1 float64 // specific gas constant [psia・ft³/(lbm・degR)]
	Rgas2 float64 // specific gas constant [ft・lbf/(lbm・degR)]
	Cmf   float64 // mass-flow conversion constant = Tb・Rgas1/Pb [ft³/lbm]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "sg":
			o.SG = p.V
		case "k":
			o.K = p.V
		case "m":
			o.M = p.V
		}
	}

	// check
	if o.SG <= 0 {
		return chk.Err("gas model: specific gravity must be positive. sg=%g is invalid", o.SG)
	}
	if o.K <= 1 {
		return chk.Err("gas model: specific heat ratio must be greater than one. k=%g is invalid", o.K)
	}

	// derived
	if o.M <= 0 {
		o.M = o.SG * Mair
	}
	o.Rgas1 = Runiv / o.M
	o.Rgas2 = 1545.0 / o.M
	o.Cmf = Tb * o.Rgas1 / Pb
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters (methane); otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "sg", V: Mmethane / Mair}, // [1]
			&dbf.P{N: "k", V: 1.32},             // [1]
			&dbf.P{N: "m", V: Mmethane},         // [lbm/lbmol]
		}
	}
	return dbf.Params{
		&dbf.P{N: "sg", V: o.SG},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "m", V: o.M},
	}
}

// Mratio returns (k-1)/k
func (o Model) Mratio() float64 {
	return (o.K - 1.0) / o.K
}

// New allocates and initialises a gas model from the database of known gases
func New(name string) (mdl *Model, err error) {
	prms, ok := gasDB[name]
	if !ok {
		return nil, chk.Err("gas %q is not available in 'gas' database", name)
	}
	mdl = new(Model)
	mdl.Name = name
	err = mdl.Init(prms)
	return
}

// gasDB holds the parameters of all known gases
var gasDB = map[string]dbf.Params{
	"methane": {&dbf.P{N: "sg", V: Mmethane / Mair}, &dbf.P{N: "k", V: 1.32}, &dbf.P{N: "m", V: Mmethane}},
	"air":     {&dbf.P{N: "sg", V: 1.0}, &dbf.P{N: "k", V: 1.4}, &dbf.P{N: "m", V: Mair}},
	"sweet06": {&dbf.P{N: "sg", V: 0.6}, &dbf.P{N: "k", V: 1.3}},
}

// Pavg computes the average pressure in a pipe segment (GPNO)
//  Input:
//   p1 -- upstream pressure [psia]
//   p2 -- downstream pressure [psia]
//  Output:
//   pavg [psia]
func Pavg(p1, p2 float64) (pavg float64, err error) {
	if p1 <= 0 || p2 <= 0 {
		return 0, chk.Err("average pressure: pressures must be positive. p1=%g, p2=%g are invalid", p1, p2)
	}
	return (2.0 / 3.0) * (p1 + p2 - p1*p2/(p1+p2)), nil
}

// Zcnga computes the compressibility factor z using the California Natural
// Gas Association method (GPH eq 1.34). The correlation is meant for
// pressures above atmospheric: below 14.7 [psia] the gauge term is negative
// and z comes out slightly greater than one
//  Input:
//   sg   -- specific gravity [1]
//   tavg -- average gas temperature [degF]
//   pavg -- average pressure [psia]
//  Output:
//   z [1]
func Zcnga(sg, tavg, pavg float64) (z float64, err error) {
	if sg <= 0 {
		return 0, chk.Err("CNGA z-factor: specific gravity must be positive. sg=%g is invalid", sg)
	}
	if pavg <= 0 {
		return 0, chk.Err("CNGA z-factor: average pressure must be positive. pavg=%g is invalid", pavg)
	}
	tavgAbs := tavg + 460.0 // [degR]
	if tavgAbs <= 0 {
		return 0, chk.Err("CNGA z-factor: absolute temperature must be positive. tavg=%g [degF] is invalid", tavg)
	}
	pavgPsig := pavg - 14.7 // gauge units
	term := pavgPsig * 344400.0 * math.Pow(10, 1.785*sg) / math.Pow(tavgAbs, 3.825)
	return 1.0 / (1.0 + term), nil
}

// Ksuc computes the suction constant for flow equations (GPNO ch.2)
//  Input:
//   tf -- gas flowing temperature [degR]
//   z  -- compressibility factor at flowing conditions [1]
//  Output:
//   ksuc [1/psia]
func Ksuc(tf, z float64) (ksuc float64, err error) {
	if tf <= 0 {
		return 0, chk.Err("ksuc: flowing temperature must be positive. tf=%g is invalid", tf)
	}
	if z <= 0 {
		return 0, chk.Err("ksuc: compressibility factor must be positive. z=%g is invalid", z)
	}
	return Tb / (Pb * tf * z), nil
}
