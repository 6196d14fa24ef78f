// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements conversions and formulas for pipeline gas flows
package flow

import (
	"math"

	"github.com/codyallen08/psig-compressor-course/mdl/gas"
	"github.com/cpmech/gosl/chk"
)

// QaToMass converts actual volumetric flow to mass flow
//  Input:
//   qActual -- volumetric flow at flowing conditions [acfm]
//   pSuc    -- suction pressure [psia]
//   ksuc    -- suction constant = Tb/(Pb・tf・z) [1/psia]
//   cmf     -- mass-flow conversion constant (GPNO ch.2) [ft³/lbm]
//  Output:
//   massflow [lbm/day]
func QaToMass(qActual, pSuc, ksuc, cmf float64) (massflow float64, err error) {
	if math.Abs(cmf) < 1e-8 {
		return 0, chk.Err("flow conversion: cmf=%g is very close to zero; check physical units", cmf)
	}
	if qActual < 0 {
		return 0, chk.Err("flow conversion: volumetric flow must not be negative. qActual=%g is invalid", qActual)
	}
	if pSuc <= 0 {
		return 0, chk.Err("flow conversion: suction pressure must be positive. pSuc=%g is invalid", pSuc)
	}
	if ksuc <= 0 {
		return 0, chk.Err("flow conversion: suction constant must be positive. ksuc=%g is invalid", ksuc)
	}
	return ksuc * pSuc * qActual * 60.0 * 24.0 / cmf, nil
}

// QbToMass converts volumetric flow at standard conditions to mass flow.
// Note the units: qStd must be [scfd] and not [MMscfd].
//  Input:
//   qStd  -- flow at standard conditions [scfd]
//   rgas1 -- specific gas constant [psia・ft³/(lbm・degR)]
//  Output:
//   massflow [lbm/day]
func QbToMass(qStd, rgas1 float64) (massflow float64, err error) {
	if qStd < 0 {
		return 0, chk.Err("flow conversion: standard flow must not be negative. qStd=%g is invalid", qStd)
	}
	if rgas1 <= 0 {
		return 0, chk.Err("flow conversion: gas constant must be positive. rgas1=%g is invalid", rgas1)
	}
	return qStd * gas.Pb / (rgas1 * gas.Tb), nil
}

// MassToQb converts mass flow to volumetric flow at standard conditions
//  Input:
//   massflow -- mass flow [lbm/day]
//   rgas1    -- specific gas constant [psia・ft³/(lbm・degR)]
//  Output:
//   qStd [scfd]
func MassToQb(massflow, rgas1 float64) (qStd float64, err error) {
	if massflow < 0 {
		return 0, chk.Err("flow conversion: mass flow must not be negative. massflow=%g is invalid", massflow)
	}
	if rgas1 <= 0 {
		return 0, chk.Err("flow conversion: gas constant must be positive. rgas1=%g is invalid", rgas1)
	}
	return massflow * (rgas1 * gas.Tb) / gas.Pb, nil
}

// MassToQa converts mass flow to actual volumetric flow
//  Input:
//   massflow -- mass flow [lbm/day]
//   ksuc     -- suction constant = Tb/(Pb・tf・z) [1/psia]
//   pSuc     -- suction pressure [psia]
//   cmf      -- mass-flow conversion constant (GPNO ch.2) [ft³/lbm]
//  Output:
//   qActual [acfm]
func MassToQa(massflow, ksuc, pSuc, cmf float64) (qActual float64, err error) {
	if massflow < 0 {
		return 0, chk.Err("flow conversion: mass flow must not be negative. massflow=%g is invalid", massflow)
	}
	if ksuc <= 0 {
		return 0, chk.Err("flow conversion: suction constant must be positive. ksuc=%g is invalid", ksuc)
	}
	if pSuc <= 0 {
		return 0, chk.Err("flow conversion: suction pressure must be positive. pSuc=%g is invalid", pSuc)
	}
	if math.Abs(cmf) < 1e-8 {
		return 0, chk.Err("flow conversion: cmf=%g is very close to zero; check physical units", cmf)
	}
	return massflow * cmf / (ksuc * pSuc) / 1440.0, nil
}

// QaToQb converts actual volumetric flow to flow at standard conditions
//  Input:
//   qActual -- volumetric flow at flowing conditions [acfm]
//   tSuc    -- suction temperature [degR]
//   pSuc    -- suction pressure [psia]
//   zSuc    -- suction compressibility factor [1]
//  Output:
//   qStd [scfm]
func QaToQb(qActual, tSuc, pSuc, zSuc float64) (qStd float64, err error) {
	if qActual < 0 {
		return 0, chk.Err("flow conversion: volumetric flow must not be negative. qActual=%g is invalid", qActual)
	}
	if tSuc <= 0 {
		return 0, chk.Err("flow conversion: suction temperature must be positive. tSuc=%g is invalid", tSuc)
	}
	if pSuc <= 0 {
		return 0, chk.Err("flow conversion: suction pressure must be positive. pSuc=%g is invalid", pSuc)
	}
	if zSuc <= 0 {
		return 0, chk.Err("flow conversion: compressibility factor must be positive. zSuc=%g is invalid", zSuc)
	}
	return qActual * pSuc * gas.Tb / (tSuc * gas.Pb * zSuc), nil
}

// General computes the flow in a pipe segment with the general flow equation
// (GPH eq 2.2)
//  Input:
//   p1 -- upstream pressure [psia]
//   p2 -- downstream pressure [psia]
//   d  -- pipe inside diameter [in]
//   g  -- gas specific gravity [1]
//   tf -- average gas flowing temperature [degR]
//   l  -- pipe segment length [mi]
//   z  -- gas compressibility factor [1]
//   f  -- friction factor [1]
//  Output:
//   q [scfd]
func General(p1, p2, d, g, tf, l, z, f float64) (q float64, err error) {
	if p1 <= 0 || p2 <= 0 {
		return 0, chk.Err("general flow equation: pressures must be positive. p1=%g, p2=%g are invalid", p1, p2)
	}
	if p2 >= p1 {
		return 0, chk.Err("general flow equation: downstream pressure must be smaller than upstream pressure. p1=%g, p2=%g are invalid", p1, p2)
	}
	if d <= 0 || g <= 0 || tf <= 0 || l <= 0 || z <= 0 || f <= 0 {
		return 0, chk.Err("general flow equation: d, g, tf, l, z and f must all be positive. d=%g, g=%g, tf=%g, l=%g, z=%g, f=%g are invalid", d, g, tf, l, z, f)
	}
	return gas.Kf * (gas.Tb / gas.Pb) * math.Pow(d, 2.5) * math.Sqrt((p1*p1-p2*p2)/(g*tf*l*z*f)), nil
}
