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
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestMoho(t *testing.T) {
	const refThickness = 30000.
	topo := testTopography()
	moho, err := Moho(topo, testDensities, refThickness)
	if err != nil {
		t.Fatal(err)
	}
	root, err := Roots(topo, testDensities)
	if err != nil {
		t.Fatal(err)
	}
	for i := range moho.Elements {
		want := refThickness + root.Elements[i]
		if !floats.EqualWithinAbsOrRel(moho.Elements[i], want, testTolerance, testTolerance) {
			t.Errorf("moho element %d = %g, want %g", i, moho.Elements[i], want)
		}
	}
}

// Missing antiroots stay missing after the reference thickness is added.
func TestMohoMissingWater(t *testing.T) {
	rho := testDensities
	rho.Water = 0
	moho, err := Moho(testTopography(), rho, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if !IsMissing(moho.Elements[1]) {
		t.Errorf("oceanic moho = %g, want missing-value marker", moho.Elements[1])
	}
	if !floats.EqualWithinAbsOrRel(moho.Elements[0], 36750, testTolerance, testTolerance) {
		t.Errorf("continental moho = %g, want 36750", moho.Elements[0])
	}
}

func TestMohoInvalidReferenceThickness(t *testing.T) {
	for _, refThickness := range []float64{0, -30000, math.NaN(), math.Inf(1)} {
		if _, err := Moho(testTopography(), testDensities, refThickness); err == nil {
			t.Errorf("reference thickness %g: got nil error, want error", refThickness)
		}
	}
}
