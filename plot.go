/*
 * plot.go, part of goWhittaker.
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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PlotIntegrals draws the bounded (C0) and tail (Ci) integral curves for one
//angular momentum over n radii in [0, rmax], saving a PNG to filename. This
//is a convenience surface, not a fundamental function, so bad arguments are
//returned as errors rather than panics.
func PlotIntegrals(alpha float64, l int, rmax float64, n int, filename string) error {
	if alpha <= 0 {
		return fmt.Errorf("goWhittaker/whittaker.PlotIntegrals: exponent must be positive, got %g", alpha)
	}
	if l < 0 || l%2 != 0 {
		return fmt.Errorf("goWhittaker/whittaker.PlotIntegrals: l must be a non-negative even integer, got %d", l)
	}
	if rmax <= 0 || n < 2 {
		return fmt.Errorf("goWhittaker/whittaker.PlotIntegrals: need rmax > 0 and n >= 2, got rmax=%g n=%d", rmax, n)
	}
	g := NewGrid(Uniform(rmax, n), alpha)
	radii := g.Radii()
	bounded := g.C0(l)
	tail := g.Ci(l)

	ptsC0 := make(plotter.XYs, n)
	ptsCi := make(plotter.XYs, n)
	for i, x := range radii {
		ptsC0[i].X = x
		ptsC0[i].Y = bounded[i]
		ptsCi[i].X = x
		ptsCi[i].Y = tail[i]
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Radial integrals, l=%d, alpha=%.4g", l, alpha)
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = "integral"
	p.Add(plotter.NewGrid())
	lineC0, err := plotter.NewLine(ptsC0)
	if err != nil {
		return err
	}
	lineC0.Color = color.RGBA{R: 255, A: 255}
	lineCi, err := plotter.NewLine(ptsCi)
	if err != nil {
		return err
	}
	lineCi.Color = color.RGBA{B: 255, A: 255}
	p.Add(lineC0, lineCi)
	p.Legend.Add("bounded", lineC0)
	p.Legend.Add("tail", lineCi)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
