/*
 * plot.go, part of golammps.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Package msdplot draws mean squared displacement curves with gonum/plot.
package msdplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one curve: a name for the legend and its points.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// XY pairs x and y as plotter.XYs. It returns an error if the slices have different
// lengths, are empty, or contain NaN or infinite values.
func XY(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("golammps/msdplot: %d x values but %d y values", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("golammps/msdplot: no points to plot")
	}
	ret := make(plotter.XYs, len(x))
	for i := range x {
		if invalid(x[i]) || invalid(y[i]) {
			return nil, fmt.Errorf("golammps/msdplot: invalid point %d (%v, %v)", i, x[i], y[i])
		}
		ret[i].X = x[i]
		ret[i].Y = y[i]
	}
	return ret, nil
}

func invalid(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "MSD"
	p.Add(plotter.NewGrid())
	return p
}

// Plot writes a line plot of y against x to filename. The format is
// taken from the extension of filename (png, svg, pdf, eps, jpg, tif).
func Plot(x, y []float64, title, filename string) error {
	return PlotSeries(title, filename, Series{Name: "MSD", X: x, Y: y})
}

// PlotSeries writes a plot with one line, with points, for each series given.
func PlotSeries(title, filename string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("golammps/msdplot: no series to plot")
	}
	p := basicPlot(title)
	for i, s := range series {
		xys, err := XY(s.X, s.Y)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		pts.Color = plotutil.Color(i)
		pts.Shape = plotutil.Shape(i)
		p.Add(l, pts)
		if s.Name != "" {
			p.Legend.Add(s.Name, l, pts)
		}
	}
	p.Legend.Top = true
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
