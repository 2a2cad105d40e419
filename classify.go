/*
 * classify.go, part of golammps.
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
	"log"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/spatial/r3"
)

// Keyword is the section keyword carried by a control line.
type Keyword int

const (
	NoKeyword Keyword = iota
	Timestep          // TIMESTEP
	Box               // BOX
	Number            // NUMBER
	Atoms             // ITEM:ATOMS
)

// keywords in matching order. The first one contained in a line wins.
var keywords = []struct {
	k   Keyword
	str string
}{
	{Timestep, "TIMESTEP"},
	{Box, "BOX"},
	{Number, "NUMBER"},
	{Atoms, "ITEM:ATOMS"},
}

func (k Keyword) String() string {
	for _, v := range keywords {
		if v.k == k {
			return v.str
		}
	}
	return "none"
}

//fixedCols is the number of leading, positional columns in an atom line:
//item type mol x y z
const fixedCols = 6

//the optional columns recognized in the ITEM: ATOMS header. The index
//is the component (0,1,2 for x,y,z) of the vector property.
type column struct {
	mass bool
	prop Property
	comp int
}

var optionalColumns = map[string]column{
	"mass":    {mass: true},
	"vx":      {prop: Velocity, comp: 0},
	"vy":      {prop: Velocity, comp: 1},
	"vz":      {prop: Velocity, comp: 2},
	"xs":      {prop: Scaled, comp: 0},
	"ys":      {prop: Scaled, comp: 1},
	"zs":      {prop: Scaled, comp: 2},
	"xsu":     {prop: ScaledUnwrapped, comp: 0},
	"ysu":     {prop: ScaledUnwrapped, comp: 1},
	"zsu":     {prop: ScaledUnwrapped, comp: 2},
	"fx":      {prop: Force, comp: 0},
	"fy":      {prop: Force, comp: 1},
	"fz":      {prop: Force, comp: 2},
	"mux":     {prop: Dipole, comp: 0},
	"muy":     {prop: Dipole, comp: 1},
	"muz":     {prop: Dipole, comp: 2},
	"omegax":  {prop: Omega, comp: 0},
	"omegay":  {prop: Omega, comp: 1},
	"omegaz":  {prop: Omega, comp: 2},
	"angmomx": {prop: AngMom, comp: 0},
	"angmomy": {prop: AngMom, comp: 1},
	"angmomz": {prop: AngMom, comp: 2},
}

// Schema gives meaning to the columns that follow the 6 fixed ones
// (item type mol x y z) in an atom line. It is built from the column names in
// the ITEM: ATOMS header.
type Schema struct {
	//trailing[i] is the meaning of column fixedCols+i, nil if unknown.
	trailing []*column
}

// DefaultSchema returns the schema used when the header doesn't name any
// column past the fixed ones: velocities (vx vy vz).
func DefaultSchema() *Schema {
	return NewSchema([]string{"vx", "vy", "vz"})
}

// NewSchema returns the schema for the given names of the trailing columns,
// i.e. those after item type mol x y z. Unknown names are kept as
// placeholders and ignored when reading atoms.
func NewSchema(names []string) *Schema {
	S := &Schema{trailing: make([]*column, len(names))}
	for i, v := range names {
		if c, ok := optionalColumns[v]; ok {
			c := c
			S.trailing[i] = &c
		}
	}
	return S
}

// SchemaFromHeader builds the schema from an ITEM: ATOMS header line. The
// first two tokens (ITEM: ATOMS) and the names of the 6 fixed columns are
// skipped. If the header names no further columns, DefaultSchema is returned.
// The fixed columns are positional: whatever the header calls them, the first
// six are read as item type mol x y z. A header without one of them (e.g. without
// mol) shifts every trailing name by one column, so a warning is logged when
// the 4th to 6th names are not x, y and z (or variants such as xu and xs).
func SchemaFromHeader(line string) *Schema {
	fields := strings.Fields(line)
	//"ITEM:ATOMS" written without the space counts as a single token.
	skip := 2
	if len(fields) > 0 && strings.HasPrefix(fields[0], "ITEM:") && len(fields[0]) > len("ITEM:") {
		skip = 1
	}
	if len(fields) > skip && !fixedNamesMatch(fields[skip:]) {
		log.Printf("ITEM: ATOMS header %q doesn't start with item type mol x y z. Columns are read by position, the trailing names may be misassigned", line)
	}
	if len(fields) <= skip+fixedCols {
		return DefaultSchema()
	}
	return NewSchema(fields[skip+fixedCols:])
}

// fixedNamesMatch returns true if names, the column names of an ITEM: ATOMS
// header, have at least fixedCols elements and the 4th to 6th are positions
// along x, y and z.
func fixedNamesMatch(names []string) bool {
	if len(names) < fixedCols {
		return false
	}
	for i, axis := range []string{"x", "y", "z"} {
		if !strings.HasPrefix(names[3+i], axis) {
			return false
		}
	}
	return true
}

// Names returns the recognized trailing column names, in order, with an
// empty string for the ignored ones.
func (S *Schema) Names() []string {
	ret := make([]string, len(S.trailing))
	for i, v := range S.trailing {
		if v == nil {
			continue
		}
		for name, c := range optionalColumns {
			if c == *v {
				ret[i] = name
				break
			}
		}
	}
	return ret
}

type tag int

const (
	tagUnrecognized tag = iota
	tagParticle
	tagHeader
)

// tagged is a classified line. Only the field that corresponds
// to the tag is meaningful.
type tagged struct {
	tag      tag
	particle Particle
	keyword  Keyword
	text     string
}

// classify tags a line. It first tries to read the line as an atom
// using the schema S. Only if that fails is it considered a control line, and the first
// keyword it contains, if any, is determined.
func classify(line string, S *Schema) tagged {
	fields := strings.Fields(line)
	if p, ok := readParticle(fields, S); ok {
		return tagged{tag: tagParticle, particle: p}
	}
	if k := findKeyword(line); k != NoKeyword {
		return tagged{tag: tagHeader, keyword: k, text: line}
	}
	return tagged{tag: tagUnrecognized, text: line}
}

// findKeyword returns the first keyword, in matching order, that is contained
// in the line once all whitespace has been removed (so "ITEM: ATOMS" matches
// ITEM:ATOMS). The match is case-sensitive.
func findKeyword(line string) Keyword {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	for _, v := range keywords {
		if strings.Contains(compact, v.str) {
			return v.k
		}
	}
	return NoKeyword
}

// readParticle reads an atom from the fields of a line. The six fixed
// columns must be present and parse, trailing columns that are missing or don't
// parse are just left out. A vector property is only set if its 3 components were read.
func readParticle(fields []string, S *Schema) (Particle, bool) {
	var p Particle
	if len(fields) < fixedCols {
		return p, false
	}
	var ints [3]int
	var err error
	for i := 0; i < 3; i++ {
		ints[i], err = strconv.Atoi(fields[i])
		if err != nil {
			return p, false
		}
	}
	var xyz [3]float64
	for i := 0; i < 3; i++ {
		xyz[i], err = strconv.ParseFloat(fields[3+i], 64)
		if err != nil {
			return p, false
		}
	}
	p = NewParticle(ints[0], ints[1], ints[2], r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	if S == nil {
		return p, true
	}
	var comps [nProperties][3]float64
	var found [nProperties]int
	for i, c := range S.trailing {
		if c == nil || fixedCols+i >= len(fields) {
			continue
		}
		f, err := strconv.ParseFloat(fields[fixedCols+i], 64)
		if err != nil {
			continue
		}
		if c.mass {
			p = p.WithMass(f)
			continue
		}
		comps[c.prop][c.comp] = f
		found[c.prop]++
	}
	//a single allocation for all the vector properties of the atom.
	var vecs *vectors
	for prop, n := range found {
		if n != 3 {
			continue
		}
		if vecs == nil {
			vecs = new(vectors)
		}
		c := comps[prop]
		vecs[prop] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
		p.has |= 1 << prop
	}
	p.vecs = vecs
	return p, true
}
