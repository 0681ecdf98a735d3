/*
 * grid.go, part of goWhittaker.
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

package whittaker

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

//Grid bundles a radius array with one decay exponent and the exp/erf
//auxiliaries the evaluators consume. The auxiliaries are computed once at
//construction and reused across every angular momentum, which is where the
//savings are: a basis shell is evaluated for many l values on the same radii.
type Grid struct {
	alpha float64
	r     []float64
	expa  []float64
	erfa  []float64
}

//NewGrid returns a Grid for the given radii and exponent, precomputing
//exp(-alpha*r^2) and erf(sqrt(alpha)*r) for every radius. The radii are
//copied, so the caller's slice can be reused. Panics on a non-positive
//exponent, an empty radius set, or a negative radius.
func NewGrid(r []float64, alpha float64) *Grid {
	if alpha <= 0 {
		panic(fmt.Sprintf("goWhittaker/whittaker.NewGrid: exponent must be positive, got %g", alpha))
	}
	if len(r) == 0 {
		panic("goWhittaker/whittaker.NewGrid: empty radius set")
	}
	if slices.Min(r) < 0 {
		panic("goWhittaker/whittaker.NewGrid: negative radius")
	}
	g := new(Grid)
	g.alpha = alpha
	g.r = slices.Clone(r)
	g.expa = make([]float64, len(r))
	g.erfa = make([]float64, len(r))
	t := math.Sqrt(alpha)
	for i, x := range g.r {
		g.expa[i] = math.Exp(-alpha * x * x)
		g.erfa[i] = math.Erf(t * x)
	}
	return g
}

//Uniform returns n equally spaced radii covering [0, rmax], a convenience
//for building plotting and test grids. Production callers normally bring
//their own quadrature radii.
func Uniform(rmax float64, n int) []float64 {
	if rmax <= 0 || n < 2 {
		panic(fmt.Sprintf("goWhittaker/whittaker.Uniform: need rmax > 0 and n >= 2, got rmax=%g n=%d", rmax, n))
	}
	return floats.Span(make([]float64, n), 0, rmax)
}

//Len returns the number of radial samples.
func (g *Grid) Len() int {
	return len(g.r)
}

//Alpha returns the decay exponent the grid was built for.
func (g *Grid) Alpha() float64 {
	return g.alpha
}

//Radii returns a copy of the radius array. If dest is given and large
//enough it is used as the backing storage.
func (g *Grid) Radii(dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= len(g.r) {
		d = dest[0][:len(g.r)]
	} else {
		d = make([]float64, len(g.r))
	}
	copy(d, g.r)
	return d
}

//C0a evaluates the two-index bounded integral for every radius, returning a
//fresh output slice. Panics under the same parity/ordering rules as the
//free function.
func (g *Grid) C0a(l1, l2 int) []float64 {
	wc := make([]float64, len(g.r))
	C0a(wc, g.r, g.expa, g.erfa, g.alpha, l1, l2)
	return wc
}

//C0 evaluates the bounded integral for every radius, returning a fresh
//output slice.
func (g *Grid) C0(l int) []float64 {
	wc := make([]float64, len(g.r))
	C0(wc, g.r, g.expa, g.erfa, g.alpha, l)
	return wc
}

//Ci evaluates the tail integral for every radius, returning a fresh output
//slice.
func (g *Grid) Ci(l int) []float64 {
	wc := make([]float64, len(g.r))
	Ci(wc, g.r, g.expa, g.alpha, l)
	return wc
}
