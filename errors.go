/*
 * errors.go, part of golammps.
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
	"errors"
	"fmt"
)

// Kind classifies the errors returned while parsing a dump file.
type Kind int

const (
	IOError           Kind = iota // the file can't be opened or read
	FormatError                   // a control line without any known keyword
	StructuralError               // a section or atom before any frame exists
	NumericParseError             // a section value that is not the number it should be
	CountError                    // a frame with a different number of atoms than declared
)

var kindNames = map[Kind]string{
	IOError:           "I/O error",
	FormatError:       "format error",
	StructuralError:   "structural error",
	NumericParseError: "numeric parse error",
	CountError:        "atom count error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Messages used by the parser.
const (
	UnableToOpen      = "Unable to open file"
	ReadError         = "Error reading file"
	Unrecognized      = "unrecognized line"
	NoFrame           = "no frame initialized"
	WrongTimestep     = "Can't read timestep"
	WrongBound        = "Can't read box bounds"
	WrongAtomCount    = "Can't read number of atoms"
	AtomCountMismatch = "Number of atoms read doesn't match the declared one"
)

// ParseError is the error type for dump files. It fulfills Error and TrajError.
// All parse errors are critical: the parse is aborted and no data is returned.
type ParseError struct {
	kind     Kind
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if the error isn't tied to a line.
	text     string //offending line, if any.
	deco     []string
	critical bool
	err      error //underlying error, if any.
}

func newParseError(kind Kind, message, filename string, line int, text string, err error, deco ...string) ParseError {
	return ParseError{kind: kind, message: message, filename: filename, line: line, text: text, deco: deco, critical: true, err: err}
}

func (err ParseError) Error() string {
	ret := fmt.Sprintf("lammps dump file %s %s", err.filename, err.kind)
	if err.line > 0 {
		ret += fmt.Sprintf(" at line %d", err.line)
	}
	ret += ": " + err.message
	if err.text != "" {
		ret += fmt.Sprintf(" (%q)", err.text)
	}
	if err.err != nil {
		ret += ": " + err.err.Error()
	}
	return ret
}

// Unwrap returns the underlying error, if any, so errors.Is can see, for
// instance, a fs.ErrNotExist from os.Open.
func (err ParseError) Unwrap() error { return err.err }

// Decorate adds new information to the error
func (err ParseError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Kind returns the kind of error.
func (err ParseError) Kind() Kind { return err.kind }

// Line returns the line of the file where the error was found, or 0.
func (err ParseError) Line() int { return err.line }

// Text returns the offending line, if any.
func (err ParseError) Text() string { return err.text }

// FileName returns the file to which the failing trajectory was associated
func (err ParseError) FileName() string { return err.filename }

// Format returns the format of the file (always "lammpstrj") associated to the error
func (err ParseError) Format() string { return "lammpstrj" }

// Critical returns true if the error is critical, false otherwise
func (err ParseError) Critical() bool { return err.critical }

// KindOf returns the Kind of err if err is, or wraps, a ParseError.
func KindOf(err error) (Kind, bool) {
	var perr ParseError
	if errors.As(err, &perr) {
		return perr.kind, true
	}
	return 0, false
}

// IsKind returns true if err is, or wraps, a ParseError of kind k.
func IsKind(err error, k Kind) bool {
	kk, ok := KindOf(err)
	return ok && kk == k
}

//errDecorate decorates err with the caller's name, if err implements Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
