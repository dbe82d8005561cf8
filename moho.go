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

package isostasy

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Moho calculates the depth of the isostatic Moho [m] below each sample:
// referenceThickness + root at continental points and
// referenceThickness + antiroot at oceanic points, where
// referenceThickness is the normal thickness [m] of the crust at
// zero-elevation equilibrium. Roots and antiroots follow Roots, so
// oceanic samples keep the missing-value marker when rho.Water is not
// given.
func Moho(topography *sparse.DenseArray, rho Densities, referenceThickness float64) (*sparse.DenseArray, error) {
	if !(referenceThickness > 0) || math.IsInf(referenceThickness, 0) {
		return nil, fmt.Errorf("isostasy: reference crustal thickness is %g m; it must be positive and finite", referenceThickness)
	}
	moho, err := Roots(topography, rho)
	if err != nil {
		return nil, err
	}
	floats.AddConst(referenceThickness, moho.Elements)
	return moho, nil
}
