/*
 * parse.go, part of golammps.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parse reads the whole LAMMPS dump file in path, using the default options, and
// returns a holder containing the single simulation read. Files ending
// in .gz or .zst are decompressed on the fly.
// The first problem found aborts the parse: nothing is returned together with
// an error.
func Parse(path string) (*SimHolder, error) {
	H, err := ParseWithOptions(path, nil)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return H, nil
}

// ParseWithOptions is like Parse, but uses the given options. A nil o means DefaultOptions.
func ParseWithOptions(path string, o *Options) (*SimHolder, error) {
	if o == nil {
		o = DefaultOptions()
	}
	src, err := prepSource(path, o.compression)
	if err != nil {
		return nil, errDecorate(err, "ParseWithOptions")
	}
	defer src.Close()
	S, err := ParseReader(src, path, o)
	if err != nil {
		return nil, errDecorate(err, "ParseWithOptions")
	}
	return NewSimHolder(S), nil
}

// ParseReader reads a dump trajectory from r and returns it as a simulation.
// name is only used in error messages. A nil o means DefaultOptions. The
// compression option is ignored: r must give plain text.
func ParseReader(r io.Reader, name string, o *Options) (*Simulation, error) {
	if o == nil {
		o = DefaultOptions()
	}
	P := &parser{o: o, filename: name, sim: new(Simulation), current: -1}
	in := bufio.NewReaderSize(r, 1<<16)
	for {
		text, err := in.ReadString('\n')
		if len(text) > 0 {
			P.lineno++
			if perr := P.line(strings.TrimRight(text, "\r\n")); perr != nil {
				return nil, perr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, newParseError(IOError, ReadError, name, P.lineno, "", err, "ParseReader")
		}
	}
	if P.st.owesValue() {
		log.Printf("Dump file %s ended while %s. The incomplete section was ignored", name, P.st)
	}
	if err := P.closeFrame(); err != nil {
		return nil, err
	}
	return P.sim, nil
}

// parser holds the state needed to build a Simulation from the lines of a dump file.
// The frame being built is kept as an index into the frames of the simulation,
// and resolved each time it is needed.
type parser struct {
	o        *Options
	filename string
	lineno   int
	sim      *Simulation
	current  int //index of the frame being built, -1 if none.
	st       state
	schema   *Schema
}

func (P *parser) frame() *Frame {
	if P.current < 0 {
		return nil
	}
	return P.sim.frames[P.current]
}

func (P *parser) errorf(kind Kind, text string, err error, format string, a ...interface{}) error {
	return newParseError(kind, fmt.Sprintf(format, a...), P.filename, P.lineno, text, err, "parser")
}

// line processes one line of the file.
func (P *parser) line(text string) error {
	t := classify(text, P.schema)
	//Atoms are taken greedily, whatever the state.
	if t.tag == tagParticle {
		F := P.frame()
		if F == nil {
			return P.errorf(StructuralError, text, nil, NoFrame)
		}
		F.addAtom(t.particle)
		return nil
	}
	if P.st.owesValue() {
		return P.value(text)
	}
	return P.header(t)
}

// value reads the value of the section currently open.
func (P *parser) value(text string) error {
	switch P.st.kind {
	case awaitingTimestep:
		ts, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return P.errorf(NumericParseError, text, err, WrongTimestep)
		}
		if err := P.closeFrame(); err != nil {
			return err
		}
		P.current = P.sim.appendFrame(newFrame(ts))
		P.st = state{kind: idle}
	case awaitingBoxLines:
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return P.errorf(NumericParseError, text, nil, "%s: expected 2 values, got %d", WrongBound, len(fields))
		}
		lo, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return P.errorf(NumericParseError, text, err, WrongBound)
		}
		hi, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return P.errorf(NumericParseError, text, err, WrongBound)
		}
		P.frame().addBound(Bound{Lo: lo, Hi: hi})
		P.st = P.st.nextBoxLine()
	case awaitingAtomCount:
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 0)
		if err == nil && n > uint64(maxInt) {
			err = strconv.ErrRange
		}
		if err != nil {
			return P.errorf(NumericParseError, text, err, WrongAtomCount)
		}
		F := P.frame()
		F.declared = int(n)
		F.reserve(min(int(n), P.o.maxReserve))
		P.st = state{kind: idle}
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// header opens the section named by a control line.
func (P *parser) header(t tagged) error {
	if t.tag == tagUnrecognized {
		return P.errorf(FormatError, t.text, nil, Unrecognized)
	}
	if t.keyword != Timestep && P.frame() == nil {
		return P.errorf(StructuralError, t.text, nil, "%s section found before any TIMESTEP: %s", t.keyword, NoFrame)
	}
	switch t.keyword {
	case Timestep:
		P.st = state{kind: awaitingTimestep}
	case Box:
		//ITEM: BOX BOUNDS followed by one token per dimension
		P.st = boxLines(len(strings.Fields(t.text)) - 3)
	case Number:
		P.st = state{kind: awaitingAtomCount}
	case Atoms:
		P.schema = SchemaFromHeader(t.text)
		P.st = state{kind: inAtomsBlock}
	}
	return nil
}

// closeFrame checks the frame being built, if any, against its declared
// number of atoms. The frame is never touched again afterwards.
func (P *parser) closeFrame() error {
	F := P.frame()
	if F == nil {
		return nil
	}
	declared, ok := F.Declared()
	if !ok || declared == F.Len() {
		return nil
	}
	if P.o.strictCount {
		return P.errorf(CountError, "", nil, "%s: timestep %d declares %d atoms, %d read", AtomCountMismatch, F.timestep, declared, F.Len())
	}
	log.Printf("Dump file %s: timestep %d declares %d atoms, but %d were read", P.filename, F.timestep, declared, F.Len())
	return nil
}
