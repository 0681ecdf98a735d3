/*
 * doc.go, part of goWhittaker.
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

/*Package whittaker evaluates the Whittaker-type radial integrals used in
multipole and Ewald-type electrostatics over Gaussian charge distributions.


	**goWhittaker capabilities**


    Evaluates the bounded radial integral int_0^x y^(l+2)*exp(-alpha*y^2) dy,
	with explicit closed forms for l = 0,2,...,14 and a generic finite-sum
	fallback for any larger even l.

    Evaluates the two-index variant x^(-l2-1)*int_0^x y^(l1+l2+2)*exp(-alpha*y^2) dy,
	switching to a small-argument Taylor series where the closed form
	cancels catastrophically.

    Evaluates the tail integral int_x^inf y^(l+1)*exp(-alpha*y^2) dy through
	the upper incomplete Gamma function's polynomial closed form.

    Precomputes the exp/erf auxiliaries once per radius array (the Grid type)
	for reuse across every angular momentum of a shell.

    Assembles pairwise short-range/long-range moment matrices over sets of
	Gaussian exponents, as gonum symmetric matrices.

    Plots integral curves (uses the gonum plot library).


The angular momenta are integers fixed by the basis-set configuration; the
evaluators treat invalid ones (odd sums, misordered two-index pairs) as
programming errors and panic. All per-sample work is independent, so callers
may freely split a radius array across goroutines.*/
package whittaker
