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

package msd

import "fmt"

// IndexError is returned when a frame range, a reference frame or an atom
// index is not valid for the trajectory given. It fullfills lammps.Error.
type IndexError struct {
	message string
	frame   int //the offending frame, -1 if it doesn't apply.
	index   int //the offending index.
	deco    []string
}

func newIndexError(frame, index int, caller string, format string, a ...interface{}) IndexError {
	return IndexError{message: fmt.Sprintf(format, a...), frame: frame, index: index, deco: []string{caller}}
}

func (err IndexError) Error() string {
	if err.frame >= 0 {
		return fmt.Sprintf("msd: index %d out of range in frame %d: %s", err.index, err.frame, err.message)
	}
	return fmt.Sprintf("msd: index %d out of range: %s", err.index, err.message)
}

// Decorate adds new information to the error
func (err IndexError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Frame returns the frame where the problem was found, or -1.
func (err IndexError) Frame() int { return err.frame }

// Index returns the offending index.
func (err IndexError) Index() int { return err.index }
