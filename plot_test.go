/*
 * plot_test.go, part of goWhittaker.
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
	"strings"
	"testing"
)

//Only the argument validation is covered here; actually rendering a PNG is
//exercised manually (it needs fonts and a writable directory, neither of
//which belongs in the unit tests of a numeric library).
func TestPlotArgumentErrors(Te *testing.T) {
	fmt.Println("Plot argument validation")
	cases := []struct {
		alpha float64
		l     int
		rmax  float64
		n     int
		want  string
	}{
		{-1.0, 0, 2.0, 10, "exponent"},
		{1.0, 3, 2.0, 10, "even"},
		{1.0, -2, 2.0, 10, "even"},
		{1.0, 0, 0.0, 10, "rmax"},
		{1.0, 0, 2.0, 1, "rmax"},
	}
	for _, c := range cases {
		err := PlotIntegrals(c.alpha, c.l, c.rmax, c.n, "unused.png")
		if err == nil {
			Te.Errorf("no error for alpha=%g l=%d rmax=%g n=%d", c.alpha, c.l, c.rmax, c.n)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			Te.Errorf("error %q does not mention %q", err.Error(), c.want)
		}
	}
}
