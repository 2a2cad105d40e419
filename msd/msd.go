/*
 * msd.go, part of golammps.
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

/*
Package msd computes squared displacements over the frames of a trajectory read
with the lammps package.

Compute gives, for each frame in a range, the squared distance of every atom to
the atom in the same frame whose index equals the first frame of the range.
Note that the start of the range is used both as a frame index and as an atom
index. This is the established behaviour of Compute and it is kept as is.
The conventional mean squared displacement, where each atom is compared with
itself in a reference frame, is given by Self and SelfAtoms.

Frames are processed concurrently, but results are always returned in frame order.
*/
package msd

import (
	lammps "github.com/rmera/golammps"
	"gonum.org/v1/gonum/stat"
)

// Compute returns, for each frame i in [start, end), the squared euclidean
// distance between each atom in frame i and the atom with index start in frame i.
// The result has one slice per frame, in frame order, each with as many
// elements as atoms in the frame. An empty range gives an empty result.
// An IndexError is returned if the range is not within the trajectory, or if
// some frame in the range has start or fewer atoms.
func Compute(t lammps.Trajectory, start, end int) ([][]float64, error) {
	return ComputeWithOptions(t, start, end, nil)
}

// ComputeWithOptions is like Compute, using the given options. A nil o means DefaultOptions.
func ComputeWithOptions(t lammps.Trajectory, start, end int, o *Options) ([][]float64, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if err := checkRange(t, start, end, "Compute"); err != nil {
		return nil, err
	}
	for i := start; i < end; i++ {
		if n := t.Frame(i).Len(); n <= start {
			return nil, newIndexError(i, start, "Compute", "reference atom requested, but the frame has %d atoms", n)
		}
	}
	return concMap(end-start, o.cpus, func(i int) []float64 {
		return fromAtom(t.Frame(start+i), start)
	}), nil
}

// fromAtom returns the squared distance of each atom in F to the atom with index ref.
func fromAtom(F *lammps.Frame, ref int) []float64 {
	atoms := F.Atoms()
	r := atoms[ref].Pos()
	ret := make([]float64, len(atoms))
	for i, v := range atoms {
		ret[i] = lammps.SqDist(v.Pos(), r)
	}
	return ret
}

// Means returns the mean of each row in rows, for instance the average over atoms of each frame
// in the result of Compute. The mean of an empty row is NaN.
func Means(rows [][]float64) []float64 {
	ret := make([]float64, len(rows))
	for i, v := range rows {
		ret[i] = stat.Mean(v, nil)
	}
	return ret
}

func checkRange(t lammps.Trajectory, start, end int, caller string) error {
	if start < 0 {
		return newIndexError(-1, start, caller, "negative start")
	}
	if end < start {
		return newIndexError(-1, end, caller, "end is smaller than start (%d)", start)
	}
	if end > t.Len() {
		return newIndexError(-1, end, caller, "the trajectory has %d frames", t.Len())
	}
	return nil
}

// concMap calls f for every i in [0, n), with at most cpus calls running at the time,
// and returns the results in the order of i. Each call gets its own channel to
// send the result back.
func concMap[T any](n, cpus int, f func(i int) T) []T {
	ret := make([]T, n)
	if cpus < 1 {
		cpus = 1
	}
	results := make([]chan T, cpus)
	for i := range results {
		results[i] = make(chan T)
	}
	for begin := 0; begin < n; begin += cpus {
		chunk := min(cpus, n-begin)
		for j := 0; j < chunk; j++ {
			go func(i int, pipe chan T) {
				pipe <- f(i)
			}(begin+j, results[j])
		}
		for j := 0; j < chunk; j++ {
			ret[begin+j] = <-results[j]
		}
	}
	return ret
}
