/*
 * state.go, part of golammps.
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

import "fmt"

type stateKind int

const (
	idle             stateKind = iota // between sections, only headers (and atoms) expected
	awaitingTimestep                  // the next control line is the timestep
	awaitingBoxLines                  // state.remaining bound lines still owed
	awaitingAtomCount                 // the next control line is the number of atoms
	inAtomsBlock                      // reading atoms until the next header
)

// state is the position of the parser within the sections of a frame.
// remaining is only meaningful for awaitingBoxLines, where it is always > 0.
type state struct {
	kind      stateKind
	remaining int
}

// owesValue returns true if the next control line must be a section value
// rather than a header.
func (s state) owesValue() bool {
	switch s.kind {
	case awaitingTimestep, awaitingBoxLines, awaitingAtomCount:
		return true
	default:
		return false
	}
}

// boxLines returns the state after a BOX header declaring n bound lines.
func boxLines(n int) state {
	if n <= 0 {
		return state{kind: idle}
	}
	return state{kind: awaitingBoxLines, remaining: n}
}

// nextBoxLine returns the state after one bound line has been read.
func (s state) nextBoxLine() state {
	return boxLines(s.remaining - 1)
}

func (s state) String() string {
	switch s.kind {
	case idle:
		return "idle"
	case awaitingTimestep:
		return "awaiting timestep"
	case awaitingBoxLines:
		return fmt.Sprintf("awaiting %d box lines", s.remaining)
	case awaitingAtomCount:
		return "awaiting atom count"
	case inAtomsBlock:
		return "in atoms block"
	}
	return fmt.Sprintf("state(%d)", int(s.kind))
}
