/*
 * particle.go, part of golammps.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Property identifies one of the optional per-atom vector quantities a dump
// file may carry next to the positions.
type Property int

const (
	Velocity        Property = iota // vx vy vz
	Scaled                          // xs ys zs
	ScaledUnwrapped                 // xsu ysu zsu
	Force                           // fx fy fz
	Dipole                          // mux muy muz
	Omega                           // omegax omegay omegaz
	AngMom                          // angmomx angmomy angmomz
	nProperties
)

var propertyNames = [nProperties]string{"velocity", "scaled", "scaled-unwrapped", "force", "dipole", "omega", "angmom"}

func (p Property) String() string {
	if p < 0 || p >= nProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// massBit marks the presence of the (scalar) mass in Particle.has. The
// vector properties use bits 0 to nProperties-1.
const massBit = 1 << nProperties

// Particle is the record of one atom in one frame. The item id, type, molecule id
// and position are always present, everything else only if the file
// declared (and provided) the corresponding columns.
// A Particle is not modified after it has been read.
type Particle struct {
	id   int
	typ  int
	mol  int
	pos  r3.Vec
	mass float64
	vecs *vectors //nil unless some vector property is present.
	has  uint16
}

// vectors holds the optional vector properties of a particle. It is kept
// out of line so atoms without them stay small, and never modified once
// a Particle points to it.
type vectors [nProperties]r3.Vec

// NewParticle returns a particle with the given mandatory fields and no optional ones.
func NewParticle(id, typ, mol int, pos r3.Vec) Particle {
	return Particle{id: id, typ: typ, mol: mol, pos: pos}
}

// WithMass returns a copy of P with the mass set.
func (P Particle) WithMass(m float64) Particle {
	P.mass = m
	P.has |= massBit
	return P
}

// WithVector returns a copy of P with the vector property prop set to v.
// It panics if prop is not a valid Property.
func (P Particle) WithVector(prop Property, v r3.Vec) Particle {
	if prop < 0 || prop >= nProperties {
		panic(fmt.Sprintf("golammps: invalid property %d", prop))
	}
	vecs := new(vectors)
	if P.vecs != nil {
		*vecs = *P.vecs
	}
	vecs[prop] = v
	P.vecs = vecs
	P.has |= 1 << prop
	return P
}

// ID returns the item (atom) id.
func (P Particle) ID() int { return P.id }

// Type returns the atom type code.
func (P Particle) Type() int { return P.typ }

// Mol returns the molecule id.
func (P Particle) Mol() int { return P.mol }

// Pos returns the x y z position.
func (P Particle) Pos() r3.Vec { return P.pos }

// Mass returns the mass of the particle, and whether the file contained it.
func (P Particle) Mass() (float64, bool) {
	return P.mass, P.has&massBit != 0
}

// Vector returns the requested vector property and true, or a zero vector
// and false if the property was not present in the file.
func (P Particle) Vector(prop Property) (r3.Vec, bool) {
	if prop < 0 || prop >= nProperties || P.has&(1<<prop) == 0 {
		return r3.Vec{}, false
	}
	return P.vecs[prop], true
}

// Equal returns true if P and Q have the same fields, including the
// optional ones and their presence.
func (P Particle) Equal(Q Particle) bool {
	if P.id != Q.id || P.typ != Q.typ || P.mol != Q.mol || P.pos != Q.pos || P.has != Q.has {
		return false
	}
	if P.has&massBit != 0 && P.mass != Q.mass {
		return false
	}
	for prop := Property(0); prop < nProperties; prop++ {
		a, _ := P.Vector(prop)
		b, _ := Q.Vector(prop)
		if a != b {
			return false
		}
	}
	return true
}

// Has returns true if the vector property prop was read for this particle.
func (P Particle) Has(prop Property) bool {
	_, ok := P.Vector(prop)
	return ok
}

func (P Particle) Velocity() (r3.Vec, bool)        { return P.Vector(Velocity) }
func (P Particle) Scaled() (r3.Vec, bool)          { return P.Vector(Scaled) }
func (P Particle) ScaledUnwrapped() (r3.Vec, bool) { return P.Vector(ScaledUnwrapped) }
func (P Particle) Force() (r3.Vec, bool)           { return P.Vector(Force) }
func (P Particle) Dipole() (r3.Vec, bool)          { return P.Vector(Dipole) }
func (P Particle) Omega() (r3.Vec, bool)           { return P.Vector(Omega) }
func (P Particle) AngMom() (r3.Vec, bool)          { return P.Vector(AngMom) }

func (P Particle) String() string {
	return fmt.Sprintf("%d %d %d %g %g %g", P.id, P.typ, P.mol, P.pos.X, P.pos.Y, P.pos.Z)
}
