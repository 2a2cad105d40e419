/*
 * frame.go, part of golammps.
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

// Bound is the extent of the simulation box along one dimension.
type Bound struct {
	Lo float64
	Hi float64
}

// Length returns Hi-Lo.
func (B Bound) Length() float64 {
	return B.Hi - B.Lo
}

// Frame is one snapshot of the simulation: a timestep, the box bounds
// in the order they were read and the atoms in file order (not necessarily
// sorted by id).
// Frames are only built by the parser. They are not modified afterwards.
type Frame struct {
	timestep uint64
	bounds   []Bound
	atoms    []Particle
	declared int //atom count from the NUMBER section, -1 if none was given.
}

func newFrame(timestep uint64) *Frame {
	return &Frame{timestep: timestep, declared: -1}
}

// NewFrame builds a complete frame from its parts. It is meant for callers
// that assemble trajectories themselves (e.g. tests or converters); the
// slices are copied.
func NewFrame(timestep uint64, bounds []Bound, atoms []Particle) *Frame {
	F := newFrame(timestep)
	F.bounds = append([]Bound(nil), bounds...)
	F.atoms = append([]Particle(nil), atoms...)
	return F
}

// Timestep returns the timestep of the frame.
func (F *Frame) Timestep() uint64 { return F.timestep }

// Bounds returns the box bounds of the frame. The returned slice
// must not be modified.
func (F *Frame) Bounds() []Bound { return F.bounds }

// Atoms returns the atoms of the frame. The returned slice must not be modified.
func (F *Frame) Atoms() []Particle { return F.atoms }

// Atom returns the ith atom in the frame. It panics if i is out of range.
func (F *Frame) Atom(i int) Particle { return F.atoms[i] }

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int { return len(F.atoms) }

// Declared returns the atom count given in the NUMBER OF ATOMS section
// of the frame, and false if the frame had no such section.
func (F *Frame) Declared() (int, bool) {
	return F.declared, F.declared >= 0
}

func (F *Frame) String() string {
	return fmt.Sprintf("timestep %d: %d atoms, %d bounds", F.timestep, len(F.atoms), len(F.bounds))
}

//parser-only mutators

func (F *Frame) addAtom(p Particle) {
	F.atoms = append(F.atoms, p)
}

func (F *Frame) addBound(b Bound) {
	F.bounds = append(F.bounds, b)
}

//reserve grows the capacity of the atom slice so n more atoms fit without
//reallocation. It is only an optimization, the frame can hold more.
func (F *Frame) reserve(n int) {
	if n <= cap(F.atoms)-len(F.atoms) {
		return
	}
	atoms := make([]Particle, len(F.atoms), len(F.atoms)+n)
	copy(atoms, F.atoms)
	F.atoms = atoms
}

// Simulation is one continuous trajectory: its frames in the order they
// appear in the file, which is taken to be chronological.
type Simulation struct {
	frames []*Frame
}

// NewSimulation returns a simulation containing the given frames.
func NewSimulation(frames ...*Frame) *Simulation {
	return &Simulation{frames: append([]*Frame(nil), frames...)}
}

// Len returns the number of frames.
func (S *Simulation) Len() int { return len(S.frames) }

// Frame returns the ith frame. It panics if i is out of range.
func (S *Simulation) Frame(i int) *Frame { return S.frames[i] }

// Frames returns the frames of the simulation. The slice must not be modified.
func (S *Simulation) Frames() []*Frame { return S.frames }

// Timesteps returns the timesteps of all frames, in order.
func (S *Simulation) Timesteps() []uint64 {
	ret := make([]uint64, len(S.frames))
	for i, v := range S.frames {
		ret[i] = v.timestep
	}
	return ret
}

func (S *Simulation) appendFrame(F *Frame) int {
	S.frames = append(S.frames, F)
	return len(S.frames) - 1
}

// SimHolder contains one or more simulations. A parse yields a holder with
// exactly one simulation. Independently parsed trajectories can be put together
// with Add.
type SimHolder struct {
	sims []*Simulation
}

// NewSimHolder returns a holder containing the given simulations.
func NewSimHolder(sims ...*Simulation) *SimHolder {
	return &SimHolder{sims: append([]*Simulation(nil), sims...)}
}

// Add appends the simulations to the holder.
func (H *SimHolder) Add(sims ...*Simulation) {
	H.sims = append(H.sims, sims...)
}

// Len returns the number of simulations in the holder.
func (H *SimHolder) Len() int { return len(H.sims) }

// Simulation returns the ith simulation. It panics if i is out of range.
func (H *SimHolder) Simulation(i int) *Simulation { return H.sims[i] }

// Simulations returns all the simulations in the holder.
func (H *SimHolder) Simulations() []*Simulation { return H.sims }
