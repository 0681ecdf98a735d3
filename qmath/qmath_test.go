/*
 * qmath_test.go, part of goWhittaker.
 *
 * Copyright 2024 Joaquin Poblete <jpoblete{at}qcDOTuchileDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package qmath

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFactorial(Te *testing.T) {
	fmt.Println("Factorial table")
	known := map[int]float64{0: 1, 1: 1, 2: 2, 3: 6, 7: 5040, 10: 3628800}
	for n, want := range known {
		if Factorial(n) != want {
			Te.Errorf("%d! = %g, want %g", n, Factorial(n), want)
		}
	}
	for n := 2; n <= 60; n++ {
		if !scalar.EqualWithinRel(Factorial(n), math.Gamma(float64(n+1)), 1e-13) {
			Te.Errorf("%d! disagrees with Gamma(%d)", n, n+1)
		}
	}
	if !math.IsInf(Factorial(MaxFactorial)*200, 1) {
		Te.Error("table bound is not at the float64 limit")
	}
}

func TestDoubleFactorial(Te *testing.T) {
	fmt.Println("Double factorial table")
	known := map[int]float64{-1: 1, 0: 1, 1: 1, 2: 2, 3: 3, 4: 8, 7: 105, 8: 384, 9: 945}
	for n, want := range known {
		if DoubleFactorial(n) != want {
			Te.Errorf("%d!! = %g, want %g", n, DoubleFactorial(n), want)
		}
	}
	//n!! * (n-1)!! = n!
	for n := 2; n <= 40; n++ {
		if !scalar.EqualWithinRel(DoubleFactorial(n)*DoubleFactorial(n-1), Factorial(n), 1e-14) {
			Te.Errorf("pairing identity broken at n=%d", n)
		}
	}
}

func TestGammaHalf(Te *testing.T) {
	fmt.Println("Half-integer Gamma")
	if !scalar.EqualWithinRel(GammaHalf(0), SqrtPi, 1e-15) {
		Te.Errorf("Gamma(1/2) = %g", GammaHalf(0))
	}
	for m := 0; m <= 50; m++ {
		want := math.Gamma(float64(m) + 0.5)
		if !scalar.EqualWithinRel(GammaHalf(m), want, 1e-13) {
			Te.Errorf("Gamma(%d+1/2) = %g, want %g", m, GammaHalf(m), want)
		}
	}
}

func TestOutOfTable(Te *testing.T) {
	fmt.Println("Out-of-table arguments panic")
	cases := []func(){
		func() { Factorial(-1) },
		func() { Factorial(MaxFactorial + 1) },
		func() { DoubleFactorial(-2) },
		func() { DoubleFactorial(MaxDoubleFactorial + 1) },
		func() { GammaHalf(-1) },
	}
	for i, f := range cases {
		func() {
			defer func() {
				if recover() == nil {
					Te.Errorf("case %d did not panic", i)
				}
			}()
			f()
		}()
	}
}
