/*
 * qmath.go, part of goWhittaker.
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

//Package qmath provides the exact integer combinatorics (factorials, double
//factorials) and high-precision constants used by the radial integral
//formulas. Values are table-backed and exact for every integer argument the
//integral ladders can produce.
package qmath

import "math"

//High-precision constants. math.Sqrt(math.Pi) would be correctly rounded
//anyway, but the formulas here are transcriptions of analytic results, so the
//constants are written out like the rest of the coefficients.
const (
	Pi        = 3.1415926535897932385
	SqrtPi    = 1.7724538509055160273
	InvSqrtPi = 0.5641895835477562869
	TwoPi     = 6.2831853071795864769
)

//Table bounds. 170! is the largest factorial representable in a float64;
//the double factorial table stops at 300, past any angular momentum a
//basis set will ever carry.
const (
	MaxFactorial       = 170
	MaxDoubleFactorial = 300
)

var fac [MaxFactorial + 1]float64
var dfac [MaxDoubleFactorial + 2]float64 //index shifted by one so dfac(-1) fits

func init() {
	fac[0] = 1
	for n := 1; n <= MaxFactorial; n++ {
		fac[n] = float64(n) * fac[n-1]
	}
	dfac[0] = 1 // (-1)!!
	dfac[1] = 1 // 0!!
	for n := 1; n <= MaxDoubleFactorial; n++ {
		dfac[n+1] = float64(n) * dfac[n-1]
	}
}

/**Note: The functions here panic instead of returning errors. They are
 * "fundamental" functions: an out-of-table argument means the calling code is
 * wrong, and the program should crash rather than propagate a bad integral.**/

//Factorial returns n! as a float64, exact up to the float64 integer limit.
func Factorial(n int) float64 {
	if n < 0 || n > MaxFactorial {
		panic("goWhittaker/qmath.Factorial: argument out of table range")
	}
	return fac[n]
}

//DoubleFactorial returns n!!, the product of all integers of the same parity
//as n, from n down to 1. By convention (-1)!! = 0!! = 1.
func DoubleFactorial(n int) float64 {
	if n < -1 || n > MaxDoubleFactorial {
		panic("goWhittaker/qmath.DoubleFactorial: argument out of table range")
	}
	return dfac[n+1]
}

//GammaHalf returns the Gamma function at the half-integer m+1/2, for m >= 0,
//via Gamma(m+1/2) = (2m-1)!! * sqrt(pi) / 2^m. Exact combinatorics, one
//rounding each for the sqrt(pi) product and the power-of-two scaling.
func GammaHalf(m int) float64 {
	if m < 0 {
		panic("goWhittaker/qmath.GammaHalf: negative argument")
	}
	return math.Ldexp(DoubleFactorial(2*m-1)*SqrtPi, -m)
}
