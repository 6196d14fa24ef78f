// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sta) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/codyallen08/psig-compressor-course/mdl/compressor"
	"github.com/codyallen08/psig-compressor-course/mdl/flow"
	"github.com/codyallen08/psig-compressor-course/mdl/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OpPoint holds one operating point of a compressor station
type OpPoint struct {
	Tag  int     `json:"tag"`  // tag of operating point
	Psuc float64 `json:"psuc"` // suction pressure [psia]
	Pdis float64 `json:"pdis"` // discharge pressure [psia]
	Tsuc float64 `json:"tsuc"` // suction temperature [degR]
	Q    float64 `json:"q"`    // actual volumetric flow [acfm]
	Dh   float64 `json:"dh"`   // measured enthalpy rise [ft・lbf/lbm]; 0 means unavailable
}

// Station holds the input data of a compressor station evaluation
type Station struct {

	// input
	Desc    string     `json:"desc"`    // description of station
	GasName string     `json:"gas"`     // name of gas in database; e.g. "methane"
	GasPrms dbf.Params `json:"gasprms"` // optional overrides of gas parameters
	MechEff float64    `json:"mecheff"` // mechanical train efficiency; 0 means 1
	Points  []*OpPoint `json:"points"`  // operating points

	// derived
	Gas  *gas.Model       // the gas model
	Comp compressor.Model // the compressor model
}

// Result holds a derived quantity and the unit convention it was computed under
type Result struct {
	V     float64 // value
	Units string  // unit convention
}

// OpResult holds the derived quantities of one operating point
type OpResult struct {
	Tag    int    // tag of operating point
	Pratio Result // pressure ratio [1]
	Zavg   Result // average compressibility factor [1]
	Head   Result // polytropic head [ft*lbf/lbm]
	Tdis   Result // discharge temperature estimate [degR]
	Eta    Result // polytropic efficiency [1]
	Mass   Result // mass flow [lbm/day]
	Pgas   Result // gas power [hp]
	Power  Result // consumed power [hp]
}

// ReadSta reads a station from a .sta JSON file
func ReadSta(dir, fn string) (sta *Station, err error) {

	// new station
	sta = new(Station)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, sta)
	if err != nil {
		return nil, err
	}

	// default values
	if sta.MechEff == 0 {
		sta.MechEff = 1.0
	}

	// gas model
	sta.Gas, err = gas.New(sta.GasName)
	if err != nil {
		return nil, err
	}
	if len(sta.GasPrms) > 0 {
		err = sta.Gas.Init(append(sta.Gas.GetPrms(false), sta.GasPrms...))
		if err != nil {
			return nil, err
		}
	}

	// compressor model
	sta.Comp = compressor.Model{Gas: sta.Gas, MechEff: sta.MechEff}

	// check
	err = sta.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the physical validity of the input data
func (o *Station) Validate() (err error) {
	if o.MechEff <= 0 || o.MechEff > 1 {
		return chk.Err("station %q: mechanical efficiency must be within (0,1]. mecheff=%g is invalid", o.Desc, o.MechEff)
	}
	if len(o.Points) == 0 {
		return chk.Err("station %q: at least one operating point must be given", o.Desc)
	}
	for _, pt := range o.Points {
		if pt.Psuc <= 0 || pt.Pdis <= 0 {
			return chk.Err("operating point %d: absolute pressures must be positive. psuc=%g, pdis=%g are invalid", pt.Tag, pt.Psuc, pt.Pdis)
		}
		if pt.Pdis <= pt.Psuc {
			return chk.Err("operating point %d: discharge pressure must be greater than suction pressure. psuc=%g, pdis=%g are invalid", pt.Tag, pt.Psuc, pt.Pdis)
		}
		if pt.Tsuc <= 0 {
			return chk.Err("operating point %d: absolute suction temperature must be positive. tsuc=%g is invalid", pt.Tag, pt.Tsuc)
		}
		if pt.Q < 0 {
			return chk.Err("operating point %d: volumetric flow must not be negative. q=%g is invalid", pt.Tag, pt.Q)
		}
		if pt.Dh < 0 {
			return chk.Err("operating point %d: enthalpy rise must not be negative. dh=%g is invalid", pt.Tag, pt.Dh)
		}
	}
	return
}

// Evaluate computes the derived quantities of every operating point.
// Each point is evaluated independently from fresh inputs; the station and
// gas models are not modified.
func (o *Station) Evaluate() (res []*OpResult, err error) {
	for _, pt := range o.Points {

		// pressures and compressibility
		pratio, err := compressor.PressureRatio(pt.Psuc, pt.Pdis)
		if err != nil {
			return nil, err
		}
		pavg, err := gas.Pavg(pt.Psuc, pt.Pdis)
		if err != nil {
			return nil, err
		}
		zavg, err := gas.Zcnga(o.Gas.SG, pt.Tsuc-460.0, pavg)
		if err != nil {
			return nil, err
		}

		// head and discharge temperature
		head, err := o.Comp.Head(pt.Psuc, pt.Pdis, zavg, pt.Tsuc)
		if err != nil {
			return nil, err
		}
		tdis, err := compressor.DischargeTemp(pt.Tsuc, pratio, o.Gas.Mratio())
		if err != nil {
			return nil, err
		}

		// efficiency; ideal when no enthalpy rise was measured
		eta := 1.0
		if pt.Dh > 0 {
			eta, err = compressor.Efficiency(head, pt.Dh)
			if err != nil {
				return nil, err
			}
		}

		// mass flow
		zsuc, err := gas.Zcnga(o.Gas.SG, pt.Tsuc-460.0, pt.Psuc)
		if err != nil {
			return nil, err
		}
		ksuc, err := gas.Ksuc(pt.Tsuc, zsuc)
		if err != nil {
			return nil, err
		}
		mass, err := flow.QaToMass(pt.Q, pt.Psuc, ksuc, o.Gas.Cmf)
		if err != nil {
			return nil, err
		}

		// power
		pgas, err := compressor.GasPower(mass, head)
		if err != nil {
			return nil, err
		}
		power, err := o.Comp.ConsumedPower(eta, mass, head)
		if err != nil {
			return nil, err
		}

		res = append(res, &OpResult{
			Tag:    pt.Tag,
			Pratio: Result{pratio, "1"},
			Zavg:   Result{zavg, "1"},
			Head:   Result{head, "ft*lbf/lbm"},
			Tdis:   Result{tdis, "degR"},
			Eta:    Result{eta, "1"},
			Mass:   Result{mass, "lbm/day"},
			Pgas:   Result{pgas, "hp"},
			Power:  Result{power, "hp"},
		})
	}
	return
}
