/*
Copyright © 2026 the Isostasy authors.
This file is part of Isostasy.

Isostasy is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Isostasy is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Isostasy.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package isostasy calculates the thickness of crustal roots and
// antiroots under the Airy isostatic hypothesis.
//
// In Airy's hypothesis of isostasy, the crust is treated as blocks of
// uniform density floating on a denser mantle in local gravitational
// equilibrium (Hofmann-Wellenhof and Moritz 2006). Mountains are
// compensated by roots (extra crustal thickness below them), while ocean
// basins are compensated by antiroots, a corresponding thinning of the
// crust. If T is the normal thickness of the crust, T + r and T + ar
// give the isostatic Moho at continental and oceanic points,
// respectively.
package isostasy

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// Densities holds the rock and water densities [kg m-3] that parameterize
// the Airy model.
//
// Water is optional: when it is left at its zero value, bathymetry cannot
// be compensated and oceanic samples in the output are set to the
// missing-value marker (see IsMissing). A water density of 0 kg m-3 is not
// physically meaningful, so the zero value is unambiguous.
type Densities struct {
	UpperCrust float64 // density of the upper crust [kg m-3]
	LowerCrust float64 // density of the lower crust [kg m-3]
	Mantle     float64 // density of the mantle [kg m-3]
	Water      float64 // density of sea water [kg m-3]; optional
}

// check returns an error for any density configuration that would make
// the Airy formulas physically meaningless or numerically degenerate.
func (rho Densities) check() error {
	layers := []struct {
		name string
		val  float64
	}{
		{"upper crust", rho.UpperCrust},
		{"lower crust", rho.LowerCrust},
		{"mantle", rho.Mantle},
	}
	for _, l := range layers {
		if !(l.val > 0) || math.IsInf(l.val, 0) {
			return fmt.Errorf("isostasy: %s density is %g kg m-3; densities must be positive and finite", l.name, l.val)
		}
	}
	if rho.Water != 0 && (!(rho.Water > 0) || math.IsInf(rho.Water, 0)) {
		return fmt.Errorf("isostasy: water density is %g kg m-3; it must be positive and finite when given", rho.Water)
	}
	if rho.Mantle <= rho.LowerCrust {
		return fmt.Errorf("isostasy: mantle density (%g kg m-3) must exceed lower crust density (%g kg m-3)",
			rho.Mantle, rho.LowerCrust)
	}
	return nil
}

// Roots calculates the thickness [m] of the crustal roots and antiroots
// that compensate the given topography under the Airy hypothesis.
//
// topography holds topographic height (positive) and bathymetric depth
// (negative) in meters and may have any shape; the result has the same
// shape, with element-wise correspondence. Samples where topography is
// exactly zero are treated as continental.
//
// On continental points (t ≥ 0) the root thickness is
//
//	r = ρuc / (ρm - ρlc) * t
//
// and on oceanic points (t < 0) the antiroot thickness is
//
//	ar = (ρlc - ρw) / (ρm - ρlc) * b
//
// where t is the topography, b is the bathymetry, ρm is the density of
// the mantle, ρw is the density of water, and ρuc and ρlc are the
// densities of the upper and lower crust.
//
// If rho.Water is not given, oceanic samples are set to the
// missing-value marker rather than computed. The input array is never
// modified. Density configurations for which the formulas are degenerate
// (non-positive densities, mantle no denser than the lower crust) and
// non-finite topography values are rejected with an error.
func Roots(topography *sparse.DenseArray, rho Densities) (*sparse.DenseArray, error) {
	if err := rho.check(); err != nil {
		return nil, err
	}
	rootFactor := rho.UpperCrust / (rho.Mantle - rho.LowerCrust)
	antirootFactor := (rho.LowerCrust - rho.Water) / (rho.Mantle - rho.LowerCrust)

	root := sparse.ZerosDense(topography.Shape...)
	for i, t := range topography.Elements {
		switch {
		case math.IsNaN(t) || math.IsInf(t, 0):
			return nil, fmt.Errorf("isostasy: topography element %d is %g; topography must be finite", i, t)
		case t >= 0:
			root.Elements[i] = t * rootFactor
		case rho.Water == 0:
			root.Elements[i] = math.NaN()
		default:
			root.Elements[i] = t * antirootFactor
		}
	}
	return root, nil
}

// RootsUniformCrust is the single-layer form of Roots for a crust of
// uniform density: it applies the Airy formulas with the upper and lower
// crust densities both equal to densityCrust. A densityWater of zero
// means water density was not given, as in Densities.
//
// Use Roots when separate upper and lower crust densities are available;
// this variant exists for models that do not distinguish the two.
func RootsUniformCrust(topography *sparse.DenseArray, densityCrust, densityMantle, densityWater float64) (*sparse.DenseArray, error) {
	return Roots(topography, Densities{
		UpperCrust: densityCrust,
		LowerCrust: densityCrust,
		Mantle:     densityMantle,
		Water:      densityWater,
	})
}

// IsMissing reports whether a value in an array returned by Roots,
// RootsUniformCrust, or Moho is the missing-value marker used for
// oceanic samples when no water density was given.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
