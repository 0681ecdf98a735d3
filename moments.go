/*
 * moments.go, part of goWhittaker.
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

//Pairwise moment matrices over sets of Gaussian exponents. In multipole and
//Ewald-type electrostatics the integrals are never consumed one exponent at a
//time: every pair (i,j) of primitives contributes with the combined exponent
//alpha_i+alpha_j, split at a cutoff radius into a short-range (bounded) and a
//long-range (tail) part.

package whittaker

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//TailMomentMatrix returns the symmetric matrix M with
//
//	M[i][j] = int_rc^inf y^(l+1)*exp(-(alphas[i]+alphas[j])*y^2) dy
//
//the long-range moment of every exponent pair past the cutoff rc. l must be
//even and every exponent positive; violations panic.
func TailMomentMatrix(alphas []float64, l int, rc float64) *mat.SymDense {
	checkMomentArgs("TailMomentMatrix", alphas, rc)
	n := len(alphas)
	M := mat.NewSymDense(n, nil)
	r := []float64{rc}
	wc := make([]float64, 1)
	expa := make([]float64, 1)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a := alphas[i] + alphas[j]
			expa[0] = math.Exp(-a * rc * rc)
			Ci(wc, r, expa, a, l)
			M.SetSym(i, j, wc[0])
		}
	}
	return M
}

//InnerMomentMatrix returns the symmetric matrix M with
//
//	M[i][j] = rc^(-l2-1) * int_0^rc y^(l1+l2+2)*exp(-(alphas[i]+alphas[j])*y^2) dy
//
//the short-range two-index moment of every exponent pair inside the cutoff.
//The (l1,l2) pair obeys the same parity and ordering rules as C0a; every
//exponent must be positive.
func InnerMomentMatrix(alphas []float64, l1, l2 int, rc float64) *mat.SymDense {
	checkMomentArgs("InnerMomentMatrix", alphas, rc)
	n := len(alphas)
	M := mat.NewSymDense(n, nil)
	r := []float64{rc}
	wc := make([]float64, 1)
	expa := make([]float64, 1)
	erfa := make([]float64, 1)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a := alphas[i] + alphas[j]
			expa[0] = math.Exp(-a * rc * rc)
			erfa[0] = math.Erf(math.Sqrt(a) * rc)
			C0a(wc, r, expa, erfa, a, l1, l2)
			M.SetSym(i, j, wc[0])
		}
	}
	return M
}

func checkMomentArgs(fn string, alphas []float64, rc float64) {
	if len(alphas) == 0 {
		panic("goWhittaker/whittaker." + fn + ": empty exponent set")
	}
	for _, a := range alphas {
		if a <= 0 {
			panic(fmt.Sprintf("goWhittaker/whittaker.%s: exponents must be positive, got %g", fn, a))
		}
	}
	if rc <= 0 {
		panic(fmt.Sprintf("goWhittaker/whittaker.%s: cutoff radius must be positive, got %g", fn, rc))
	}
}
