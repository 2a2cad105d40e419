/*
 * doc.go, part of golammps.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package lammps reads LAMMPS dump trajectories ("lammpstrj" files) into memory.
A parsed file is kept as a tree: a SimHolder contains Simulations, a Simulation
contains Frames, and a Frame contains Particles. The subpackages compute
quantities over the frames of a parsed Simulation: msd (mean squared displacements),
histo (histograms of them) and msdplot (plots).

	**The format, as read by this package**

A dump file is a text file with one record per line, fields separated by
whitespace. Each frame looks like:

	ITEM: TIMESTEP
	1000
	ITEM: NUMBER OF ATOMS
	2
	ITEM: BOX BOUNDS pp pp pp
	0.0 10.0
	0.0 10.0
	0.0 10.0
	ITEM: ATOMS id type mol x y z vx vy vz
	1 1 1 0.5 0.5 0.5 0.1 0.0 0.0
	2 1 1 1.5 0.5 0.5 0.0 0.1 0.0

Header lines are recognized by the first keyword they contain, in this order:
TIMESTEP, BOX, NUMBER, ITEM:ATOMS (whitespace in the line is ignored when matching, so
"ITEM: ATOMS" matches ITEM:ATOMS). A BOX header with k tokens is followed by k-3 lines,
each with the (lo, hi) bounds of the box along one dimension.

Every line is first tried as an atom: at least 6 columns, with the id, type and molecule id
as integers and x y z as floating point numbers. Any line that reads as an atom is taken as one,
wherever it appears, as long as a frame (a TIMESTEP section) exists. The columns after the
sixth are interpreted with the names given in the ITEM: ATOMS header (mass, vx, xs, xsu, fx, mux,
omegax, angmomx, and their y and z counterparts). If the header gives no such names,
the trailing columns are taken to be vx vy vz.

The parser is fail-fast. A line that is neither an atom, a header nor the expected section
value, a section before the first TIMESTEP, or (by default) a frame whose number of atoms
doesn't match its NUMBER OF ATOMS section, aborts the parse, and a ParseError is returned.
*/
package lammps
