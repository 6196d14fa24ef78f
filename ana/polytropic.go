// Copyright 2017 The Compressor Course Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PolytropicCompression computes the head (H) and discharge temperature (T2)
// of a polytropic compression from suction conditions (P1,T1) to a discharge
// pressure p2. The closed-form solution is:
//
//    m  = (k-1)/k
//    T2 = T1・(p2/P1)^m
//    H  = Z・R・T1/m・((p2/P1)^m - 1)
//
// The numerical solution integrates dH = Z・R・T(p)/p・dp along the path
// T(p) = T1・(p/P1)^m with a pseudo variable T:
//
//    P(T) = P1 + Δp・T   with 0 ≤ T ≤ 1   and   Δp = p2 - P1
//
//    dH/dT = Z・R・T1・(P/P1)^m・Δp / P
//
type PolytropicCompression struct {
	P1 float64 // suction pressure
	T1 float64 // suction temperature (absolute)
	Z  float64 // average compressibility factor
	K  float64 // specific heat ratio cp/cv
	R  float64 // specific gas constant
	m  float64 // (k-1)/k
}

// Init initialises this structure
func (o *PolytropicCompression) Init(prms dbf.Params) {

	// default values (methane at mild suction conditions, US customary units)
	o.P1 = 800.0  // [psia]
	o.T1 = 540.0  // [degR]
	o.Z = 1.0     // [1]
	o.K = 1.32    // [1]
	o.R = 96.3034 // [ft・lbf/(lbm・degR)]

	// parameters
	for _, p := range prms {
		switch p.N {
		case "p1":
			o.P1 = p.V
		case "t1":
			o.T1 = p.V
		case "z":
			o.Z = p.V
		case "k":
			o.K = p.V
		case "r":
			o.R = p.V
		}
	}

	// derived
	o.m = (o.K - 1.0) / o.K
}

// Calc computes head and discharge temperature
func (o PolytropicCompression) Calc(p2 float64) (head, t2 float64) {
	pratio := p2 / o.P1
	head = o.Z * o.R * o.T1 / o.m * (math.Pow(pratio, o.m) - 1.0)
	t2 = o.T1 * math.Pow(pratio, o.m)
	return
}

// CalcNum computes head using the numerical method with ξ := {H}
func (o PolytropicCompression) CalcNum(p2 float64) (head float64) {
	Δp := p2 - o.P1
	conf := ode.NewConfig("radau5", "", nil)
	sol := ode.NewSolver(1, conf, func(f la.Vector, dT, T float64, ξ la.Vector) {
		P := o.P1 + Δp*T
		f[0] = o.Z * o.R * o.T1 * math.Pow(P/o.P1, o.m) * Δp / P // dH/dT
	}, nil, nil)
	defer sol.Free()
	ξ := la.Vector{0}
	sol.Solve(ξ, 0, 1)
	return ξ[0]
}

// Plot plots head and discharge temperature against pressure ratio
func (o PolytropicCompression) Plot(dirout, fnkey string, maxratio float64, np int) {

	Rr := utl.LinSpace(1, maxratio, np)
	H := make([]float64, np)
	T := make([]float64, np)
	for i, r := range Rr {
		H[i], T[i] = o.Calc(r * o.P1)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(Rr, H, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$p_2/p_1$", "$H$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(Rr, T, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$p_2/p_1$", "$T_2$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
