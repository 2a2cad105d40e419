/*
 * parse_test.go, part of golammps.
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
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func parseString(Te *testing.T, s string, o *Options) (*Simulation, error) {
	Te.Helper()
	return ParseReader(strings.NewReader(s), "test", o)
}

func TestParseTwoFrames(Te *testing.T) {
	H, err := Parse("test/two_frames.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	if H.Len() != 1 {
		Te.Fatalf("expected 1 simulation, got %d", H.Len())
	}
	S := H.Simulation(0)
	if S.Len() != 2 {
		Te.Fatalf("expected 2 frames, got %d", S.Len())
	}
	ts := S.Timesteps()
	if ts[0] != 0 || ts[1] != 1 {
		Te.Errorf("wrong timesteps %v", ts)
	}
	for i, F := range S.Frames() {
		if F.Len() != 2 {
			Te.Errorf("frame %d: expected 2 atoms, got %d", i, F.Len())
		}
		if n, ok := F.Declared(); !ok || n != 2 {
			Te.Errorf("frame %d: wrong declared count %d %v", i, n, ok)
		}
		if len(F.Bounds()) != 3 {
			Te.Errorf("frame %d: expected 3 bounds, got %d", i, len(F.Bounds()))
		}
		for _, b := range F.Bounds() {
			if b.Lo != 0 || b.Hi != 10 || b.Length() != 10 {
				Te.Errorf("frame %d: wrong bound %v", i, b)
			}
		}
	}
	if p := S.Frame(1).Atom(1).Pos(); p != (r3.Vec{X: 1, Y: 2, Z: 2}) {
		Te.Errorf("wrong position for the last atom: %v", p)
	}
}

func TestParseOptionalColumns(Te *testing.T) {
	H, err := Parse("test/water.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	S := H.Simulation(0)
	if S.Len() != 3 {
		Te.Fatalf("expected 3 frames, got %d", S.Len())
	}
	//file order, not id order
	first := S.Frame(0).Atom(0)
	if first.ID() != 3 || first.Type() != 2 {
		Te.Errorf("atoms were not kept in file order: %v", first)
	}
	if m, ok := first.Mass(); !ok || m != 1.008 {
		Te.Errorf("wrong mass %v %v", m, ok)
	}
	if f, ok := first.Force(); !ok || f != (r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}) {
		Te.Errorf("wrong force %v %v", f, ok)
	}
	//the last atom of the file has no force columns.
	last := S.Frame(2).Atom(2)
	if last.Has(Force) {
		Te.Errorf("force should be absent in the truncated line")
	}
	if v, ok := last.Velocity(); !ok || v != (r3.Vec{X: 0.01, Y: -0.02, Z: 0}) {
		Te.Errorf("wrong velocity %v %v", v, ok)
	}
	if b := S.Frame(0).Bounds()[2]; b.Lo != -6 || b.Hi != 6 {
		Te.Errorf("wrong z bounds %v", b)
	}
}

// k tokens in a BOX header means k-3 bound lines.
func TestParseBoxLines(Te *testing.T) {
	in := `ITEM: TIMESTEP
5
ITEM: BOX BOUNDS pp pp
0 1
0 2
ITEM: ATOMS
1 1 1 0 0 0
`
	S, err := parseString(Te, in, nil)
	if err != nil {
		Te.Fatal(err)
	}
	F := S.Frame(0)
	if len(F.Bounds()) != 2 || F.Bounds()[1].Hi != 2 {
		Te.Errorf("expected 2 bounds, got %v", F.Bounds())
	}
	if F.Len() != 1 {
		Te.Errorf("expected 1 atom, got %d", F.Len())
	}
	if _, ok := F.Declared(); ok {
		Te.Errorf("no atom count was declared")
	}
	//A third bound line is not owed, so it is an unrecognized line.
	in = strings.Replace(in, "0 2\n", "0 2\n0 3\n", 1)
	_, err = parseString(Te, in, nil)
	if !IsKind(err, FormatError) {
		Te.Errorf("expected a format error, got %v", err)
	}
}

func TestParseStructuralErrors(Te *testing.T) {
	cases := map[string]string{
		"box":    "ITEM: BOX BOUNDS pp pp pp\n0 1\n0 1\n0 1\n",
		"number": "ITEM: NUMBER OF ATOMS\n1\n",
		"atoms":  "ITEM: ATOMS id type mol x y z\n",
		"atom":   "1 1 1 0 0 0\n",
	}
	for name, in := range cases {
		S, err := parseString(Te, in, nil)
		if S != nil {
			Te.Errorf("%s: no simulation should be returned on error", name)
		}
		if !IsKind(err, StructuralError) {
			Te.Errorf("%s: expected a structural error, got %v", name, err)
		}
	}
}

func TestParseFormatError(Te *testing.T) {
	in := `ITEM: TIMESTEP
0
ITEM: ATOMS
1 1 1 0 0 0
this is not a header
2 1 1 0 0 0
`
	S, err := parseString(Te, in, nil)
	if S != nil {
		Te.Errorf("no simulation should be returned on error")
	}
	var perr ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a ParseError, got %v", err)
	}
	if perr.Kind() != FormatError || perr.Line() != 5 || perr.Text() != "this is not a header" {
		Te.Errorf("wrong error details: %v (line %d, text %q)", perr, perr.Line(), perr.Text())
	}
	if !perr.Critical() || perr.Format() != "lammpstrj" || perr.FileName() != "test" {
		Te.Errorf("wrong error metadata: %v", perr)
	}
}

func TestParseNumericErrors(Te *testing.T) {
	cases := map[string]string{
		"timestep": "ITEM: TIMESTEP\n-1\n",
		"header":   "ITEM: TIMESTEP\nITEM: NUMBER OF ATOMS\n",
		"count":    "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\ntwo\n",
		"bound":    "ITEM: TIMESTEP\n0\nITEM: BOX BOUNDS pp\n0 x\n",
		"bound3":   "ITEM: TIMESTEP\n0\nITEM: BOX BOUNDS pp\n0 1 2\n",
	}
	for name, in := range cases {
		_, err := parseString(Te, in, nil)
		if !IsKind(err, NumericParseError) {
			Te.Errorf("%s: expected a numeric parse error, got %v", name, err)
		}
	}
}

func TestParseAtomCount(Te *testing.T) {
	in := `ITEM: TIMESTEP
0
ITEM: NUMBER OF ATOMS
3
ITEM: ATOMS
1 1 1 0 0 0
2 1 1 0 0 0
ITEM: TIMESTEP
1
ITEM: NUMBER OF ATOMS
1
ITEM: ATOMS
1 1 1 0 0 0
`
	_, err := parseString(Te, in, nil)
	if !IsKind(err, CountError) {
		Te.Errorf("expected an atom count error, got %v", err)
	}
	o := DefaultOptions()
	o.StrictCount(false)
	S, err := parseString(Te, in, o)
	if err != nil {
		Te.Fatalf("lenient parse failed: %v", err)
	}
	if S.Frame(0).Len() != 2 || S.Frame(1).Len() != 1 {
		Te.Errorf("wrong atom counts: %d %d", S.Frame(0).Len(), S.Frame(1).Len())
	}
	//Declared counts only reserve space, up to MaxReserve.
	o.MaxReserve(1)
	if _, err = parseString(Te, in, o); err != nil {
		Te.Errorf("small reservation should not matter: %v", err)
	}
}

// Atoms are taken greedily, even right after a header.
func TestParseGreedyAtoms(Te *testing.T) {
	in := `ITEM: TIMESTEP
0
1 1 1 0 0 0
ITEM: ATOMS
2 1 1 0 0 0
`
	S, err := parseString(Te, in, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Frame(0).Len() != 2 {
		Te.Errorf("expected 2 atoms, got %d", S.Frame(0).Len())
	}
}

func TestParseEmpty(Te *testing.T) {
	S, err := parseString(Te, "", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 0 {
		Te.Errorf("expected no frames, got %d", S.Len())
	}
}

func TestParseCRLF(Te *testing.T) {
	S, err := parseString(Te, "ITEM: TIMESTEP\r\n42\r\nITEM: ATOMS\r\n1 1 1 0 0 0\r\n", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Frame(0).Timestep() != 42 || S.Frame(0).Len() != 1 {
		Te.Errorf("wrong frame %v", S.Frame(0))
	}
}

func TestParseMissingFile(Te *testing.T) {
	_, err := Parse("test/does_not_exist.lammpstrj")
	if !IsKind(err, IOError) {
		Te.Errorf("expected an I/O error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("the os error should be wrapped: %v", err)
	}
}

// A BOX header without dimension tokens owes no bound lines.
func TestParseBoxNoDims(Te *testing.T) {
	in := `ITEM: TIMESTEP
0
ITEM: BOX BOUNDS
ITEM: ATOMS
1 1 1 0 0 0
`
	S, err := parseString(Te, in, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 1 || len(S.Frame(0).Bounds()) != 0 || S.Frame(0).Len() != 1 {
		Te.Errorf("expected 1 frame with 0 bounds and 1 atom, got %d frames, %v", S.Len(), S.Frame(0))
	}
}

// A file that ends while a section value is owed keeps what was read.
func TestParseEOFOwed(Te *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	frame := "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n1\nITEM: ATOMS\n1 1 1 0 0 0\n"
	for name, tail := range map[string]string{
		"timestep":  "ITEM: TIMESTEP\n",
		"count":     "ITEM: NUMBER OF ATOMS",
		"box lines": "ITEM: BOX BOUNDS pp pp pp\n0 1\n",
	} {
		buf.Reset()
		S, err := parseString(Te, frame+tail, nil)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if S.Len() != 1 || S.Frame(0).Len() != 1 {
			Te.Errorf("%s: the frame read should be kept, got %d frames", name, S.Len())
		}
		if !strings.Contains(buf.String(), "ended while") {
			Te.Errorf("%s: the incomplete section should be logged, got %q", name, buf.String())
		}
	}
}
