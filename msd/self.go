/*
 * self.go, part of golammps.
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

package msd

import (
	lammps "github.com/rmera/golammps"
	"gonum.org/v1/gonum/spatial/r3"
)

type selfResult struct {
	d   []float64
	err error
}

// SelfAtoms returns, for each frame i in [start, end), the squared displacement of
// each atom from its own position in the reference frame ref. Atoms are
// matched by id, since dump files don't need to keep them in the same order.
// An IndexError is returned if ref or the range are not within the
// trajectory, or if an atom in the range is not present in the reference frame.
// A nil o means DefaultOptions.
func SelfAtoms(t lammps.Trajectory, ref, start, end int, o *Options) ([][]float64, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if err := checkRange(t, start, end, "SelfAtoms"); err != nil {
		return nil, err
	}
	if ref < 0 || ref >= t.Len() {
		return nil, newIndexError(-1, ref, "SelfAtoms", "reference frame not in a trajectory of %d frames", t.Len())
	}
	refpos := make(map[int]r3.Vec, t.Frame(ref).Len())
	for _, v := range t.Frame(ref).Atoms() {
		refpos[v.ID()] = v.Pos()
	}
	res := concMap(end-start, o.cpus, func(i int) selfResult {
		F := t.Frame(start + i)
		d := make([]float64, F.Len())
		for j, v := range F.Atoms() {
			r, ok := refpos[v.ID()]
			if !ok {
				return selfResult{err: newIndexError(start+i, v.ID(), "SelfAtoms", "atom id not present in reference frame %d", ref)}
			}
			d[j] = lammps.SqDist(v.Pos(), r)
		}
		return selfResult{d: d}
	})
	ret := make([][]float64, len(res))
	for i, v := range res {
		if v.err != nil {
			return nil, v.err
		}
		ret[i] = v.d
	}
	return ret, nil
}

// Self returns the mean squared displacement of the atoms in each frame of
// [start, end) with respect to their own positions in the reference frame ref.
// See SelfAtoms.
func Self(t lammps.Trajectory, ref, start, end int, o *Options) ([]float64, error) {
	rows, err := SelfAtoms(t, ref, start, end, o)
	if err != nil {
		return nil, err
	}
	return Means(rows), nil
}
