/*
 * whittaker.go, part of goWhittaker.
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

	"github.com/jpoblete/gowhittaker/qmath"
)

/**Note: The evaluators here panic instead of returning errors. They are
 * "fundamental" functions, called with angular momenta that come from a
 * validated basis-set configuration: an odd l or a misordered (l1,l2) pair
 * means the calling program is wrong and should crash. No output is written
 * before validation passes.**/

//epsilon is the switchover threshold for the small-argument series branch of
//C0a. It applies to the dimensionless product sqrt(alpha)*r: below it the
//closed form divides a heavily cancelling numerator by a small power of r.
const epsilon = 1.0e-2

//Closed forms for the bounded integral int_0^x y^(l+2)*exp(-alpha*y^2) dy,
//indexed by angular momentum. Arguments are t = sqrt(alpha), u = t*x and the
//precomputed exp(-alpha*x^2) and erf(t*x). The coefficients are the expanded
//lower incomplete Gamma recurrences; hardcoding the first eight even l saves
//the summation loop (and its rounding accumulation) for the angular momenta
//that dominate production basis sets.
var c0Closed = map[int]func(t, u, expa, erfa float64) float64{
	0: func(t, u, e, r float64) float64 {
		return (qmath.SqrtPi*r - 2*u*e) / (4 * math.Pow(t, 3))
	},
	2: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (3*qmath.SqrtPi*r - e*u*(6+4*u2)) / (8 * math.Pow(t, 5))
	},
	4: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (15*qmath.SqrtPi*r - e*u*(30+u2*(20+8*u2))) / (16 * math.Pow(t, 7))
	},
	6: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (105*qmath.SqrtPi*r - e*u*(210+u2*(140+u2*(56+16*u2)))) / (32 * math.Pow(t, 9))
	},
	8: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (945*qmath.SqrtPi*r - e*u*(1890+u2*(1260+u2*(504+u2*(144+32*u2))))) / (64 * math.Pow(t, 11))
	},
	10: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (10395*qmath.SqrtPi*r - e*u*(20790+u2*(13860+u2*(5544+u2*(1584+u2*(352+64*u2)))))) / (128 * math.Pow(t, 13))
	},
	12: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (135135*qmath.SqrtPi*r - e*u*(270270+u2*(180180+u2*(72072+u2*(20592+u2*(4576+u2*(832+128*u2))))))) / (256 * math.Pow(t, 15))
	},
	14: func(t, u, e, r float64) float64 {
		u2 := u * u
		return (2027025*qmath.SqrtPi*r - e*u*(4054050+u2*(2702700+u2*(1081080+u2*(308880+u2*(68640+u2*(12480+u2*(1920+256*u2)))))))) / (512 * math.Pow(t, 17))
	},
}

//Closed forms for the tail integral int_x^inf y^(l+1)*exp(-alpha*y^2) dy,
//indexed by angular momentum. Arguments are alpha, v = alpha*x^2 and the
//precomputed exp(-alpha*x^2). The polynomials are Gamma(l/2+1, v) expanded
//for integer order; all terms share a sign, so no stability branch is needed.
var ciClosed = map[int]func(alpha, v, expa float64) float64{
	0: func(a, v, e float64) float64 {
		return 0.5 * e / a
	},
	2: func(a, v, e float64) float64 {
		return 0.5 * e * (1 + v) / (a * a)
	},
	4: func(a, v, e float64) float64 {
		return 0.5 * e * (2 + v*(2+v)) / math.Pow(a, 3)
	},
	6: func(a, v, e float64) float64 {
		return 0.5 * e * (6 + v*(6+v*(3+v))) / math.Pow(a, 4)
	},
	8: func(a, v, e float64) float64 {
		return 0.5 * e * (24 + v*(24+v*(12+v*(4+v)))) / math.Pow(a, 5)
	},
	10: func(a, v, e float64) float64 {
		return 0.5 * e * (120 + v*(120+v*(60+v*(20+v*(5+v))))) / math.Pow(a, 6)
	},
	12: func(a, v, e float64) float64 {
		return 0.5 * e * (720 + v*(720+v*(360+v*(120+v*(30+v*(6+v)))))) / math.Pow(a, 7)
	},
	14: func(a, v, e float64) float64 {
		return 0.5 * e * (5040 + v*(5040+v*(2520+v*(840+v*(210+v*(42+v*(7+v))))))) / math.Pow(a, 8)
	},
}

//generic bounded integral, any even l. Same expression the c0Closed entries
//expand: Gamma(m+1/2)*erf(u) minus the exp-weighted half-integer sum, with
//m = l/2+1.
func c0Generic(t, u, expa, erfa float64, l int) float64 {
	m := l/2 + 1
	g := qmath.GammaHalf(m)
	var sum float64
	for k := 1; k <= m; k++ {
		sum += g / qmath.GammaHalf(k) * math.Pow(u, float64(2*k-1))
	}
	return (g*erfa - expa*sum) / (2 * math.Pow(t, float64(l+3)))
}

//generic tail integral, any even l: 0.5*(l/2)! * sum_k v^k/k! * expa/alpha^(l/2+1).
func ciGeneric(alpha, v, expa float64, l int) float64 {
	n := l / 2
	var sum float64
	vk := 1.0
	for k := 0; k <= n; k++ {
		sum += qmath.Factorial(n) / qmath.Factorial(k) * vk
		vk *= v
	}
	return 0.5 * expa * sum / math.Pow(alpha, float64(n+1))
}

//c0At dispatches one bounded-integral sample to the tabulated closed form,
//falling back to the generic sum for untabulated angular momenta.
func c0At(t, u, expa, erfa float64, l int) float64 {
	if f, ok := c0Closed[l]; ok {
		return f(t, u, expa, erfa)
	}
	return c0Generic(t, u, expa, erfa, l)
}

//c0aSeries is the small-argument Taylor expansion of the two-index bounded
//integral, 6 alternating terms in alpha*x^2. It avoids the catastrophic
//cancellation (and the division by a small power of x) of the closed form
//when sqrt(alpha)*x < epsilon. The lowest power of x is l1+2, so x = 0 is
//exact.
func c0aSeries(alpha, x float64, l1, l2 int) float64 {
	l := l1 + l2
	var sum float64
	aj := 1.0 //(-alpha)^j / j!, built up term by term
	xp := math.Pow(x, float64(l1+2))
	x2 := x * x
	for j := 0; j < 6; j++ {
		sum += aj * xp / float64(l+3+2*j)
		aj *= -alpha / float64(j+1)
		xp *= x2
	}
	return sum
}

//C0a fills wc with the two-index bounded radial integral
//
//	wc[i] = x^(-l2-1) * int_0^x y^(l1+l2+2)*exp(-alpha*y^2) dy,  x = r[i]
//
//given the radii and the precomputed expa[i] = exp(-alpha*r[i]^2) and
//erfa[i] = erf(sqrt(alpha)*r[i]). The sum l1+l2 must be even (parity of the
//underlying multipole integral) and l1 >= l2 (the ordering the closed form
//is derived under); violations panic before any output is written. wc is
//zeroed and fully overwritten.
func C0a(wc, r, expa, erfa []float64, alpha float64, l1, l2 int) {
	if l1 < 0 || l2 < 0 || (l1+l2)%2 != 0 {
		panic(fmt.Sprintf("goWhittaker/whittaker.C0a: parity violation: l1+l2 must be a non-negative even integer, got l1=%d l2=%d", l1, l2))
	}
	if l1 < l2 {
		panic(fmt.Sprintf("goWhittaker/whittaker.C0a: ordering violation: need l1 >= l2, got l1=%d l2=%d", l1, l2))
	}
	checkLens("C0a", len(wc), len(r), len(expa), len(erfa))
	t := math.Sqrt(alpha)
	l := l1 + l2
	for i := range wc {
		wc[i] = 0
	}
	for i, x := range r {
		if t*x < epsilon {
			wc[i] = c0aSeries(alpha, x, l1, l2)
			continue
		}
		wc[i] = c0At(t, t*x, expa[i], erfa[i], l) / math.Pow(x, float64(l2+1))
	}
}

//C0 fills wc with the bounded radial integral
//
//	wc[i] = int_0^x y^(l+2)*exp(-alpha*y^2) dy,  x = r[i]
//
//given the radii and the precomputed expa/erfa auxiliaries (as for C0a).
//l must be even; odd l panics before any output is written. Unlike C0a there
//is no small-argument branch: the formulas carry no negative powers of x,
//and x = 0 evaluates exactly to zero. wc is zeroed and fully overwritten.
func C0(wc, r, expa, erfa []float64, alpha float64, l int) {
	if l < 0 || l%2 != 0 {
		panic(fmt.Sprintf("goWhittaker/whittaker.C0: parity violation: l must be a non-negative even integer, got %d", l))
	}
	checkLens("C0", len(wc), len(r), len(expa), len(erfa))
	t := math.Sqrt(alpha)
	for i := range wc {
		wc[i] = 0
	}
	for i, x := range r {
		wc[i] = c0At(t, t*x, expa[i], erfa[i], l)
	}
}

//Ci fills wc with the unbounded-tail radial integral
//
//	wc[i] = int_x^inf y^(l+1)*exp(-alpha*y^2) dy
//	      = 0.5 * alpha^(-l/2-1) * Gamma(l/2+1, alpha*x^2),  x = r[i]
//
//given the radii and the precomputed expa[i] = exp(-alpha*r[i]^2). No
//error-function value is needed: for integer order the upper incomplete
//Gamma is a plain polynomial times the exponential. l must be even; odd l
//panics before any output is written. wc is zeroed and fully overwritten.
func Ci(wc, r, expa []float64, alpha float64, l int) {
	if l < 0 || l%2 != 0 {
		panic(fmt.Sprintf("goWhittaker/whittaker.Ci: parity violation: l must be a non-negative even integer, got %d", l))
	}
	checkLens("Ci", len(wc), len(r), len(expa))
	for i := range wc {
		wc[i] = 0
	}
	for i, x := range r {
		v := alpha * x * x
		if f, ok := ciClosed[l]; ok {
			wc[i] = f(alpha, v, expa[i])
		} else {
			wc[i] = ciGeneric(alpha, v, expa[i], l)
		}
	}
}

//all sample arrays are aligned by index, so their lengths must agree.
func checkLens(fn string, n int, rest ...int) {
	for _, v := range rest {
		if v != n {
			panic(fmt.Sprintf("goWhittaker/whittaker.%s: input and output slices must have the same length", fn))
		}
	}
}
