/*
 * interfaces.go, part of golammps.
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

// Trajectory is a sequence of frames that can be accessed by index. Simulation
// implements it; the analysis packages take a Trajectory so they also work
// on frames put together by the caller.
type Trajectory interface {

	//Returns the number of frames
	Len() int

	//Returns the ith frame. Should panic if out of range.
	Frame(i int) *Frame
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice resulting from the current call. An empty string only returns the current value.
}

// TrajError is the interface for errors produced while reading trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
