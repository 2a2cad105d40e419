/*
 * gonum.go, part of golammps.
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

package lammps

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coords returns a new Nx3 matrix with the positions of the atoms of F, in
// file order. It returns nil for a frame without atoms, since gonum doesn't
// allow empty matrices.
func (F *Frame) Coords() *mat.Dense {
	if len(F.atoms) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(F.atoms))
	for _, v := range F.atoms {
		data = append(data, v.pos.X, v.pos.Y, v.pos.Z)
	}
	return mat.NewDense(len(F.atoms), 3, data)
}

// Positions returns the positions of the atoms of F, in file order.
func (F *Frame) Positions() []r3.Vec {
	ret := make([]r3.Vec, len(F.atoms))
	for i, v := range F.atoms {
		ret[i] = v.pos
	}
	return ret
}

// BoxLengths returns the length of the box along each dimension read.
func (F *Frame) BoxLengths() []float64 {
	ret := make([]float64, len(F.bounds))
	for i, v := range F.bounds {
		ret[i] = v.Length()
	}
	return ret
}

// SqDist returns the squared euclidean distance between a and b.
func SqDist(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}
