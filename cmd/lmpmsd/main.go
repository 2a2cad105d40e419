/*
 * main.go, part of golammps.
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

// lmpmsd computes squared displacements from a LAMMPS dump trajectory. It takes
// the path of a YAML configuration file as its only argument (see Config).
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"

	lammps "github.com/rmera/golammps"
	"github.com/rmera/golammps/histo"
	"github.com/rmera/golammps/msd"
	"github.com/rmera/golammps/msdplot"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("The path of the configuration file must be specified in the arguments")
	}
	log.Printf("Reading configuration file `%s`\n", os.Args[1])
	c, err := NewConfig(os.Args[1])
	if err != nil {
		log.Fatal(fmt.Errorf("NewConfig: %w", err))
	}
	if err = run(c); err != nil {
		log.Fatal(err)
	}
	log.Println("Done")
}

func run(c *Config) error {
	po := lammps.DefaultOptions()
	po.StrictCount(!c.Lenient)
	log.Printf("Reading trajectory `%s`\n", c.Traj)
	H, err := lammps.ParseWithOptions(c.Traj, po)
	if err != nil {
		return err
	}
	S := H.Simulation(0)
	end := c.End
	if end <= 0 || end > S.Len() {
		end = S.Len()
	}
	log.Printf("Read %d frames, using frames %d to %d\n", S.Len(), c.Start, end-1)

	mo := msd.DefaultOptions()
	mo.Cpus(c.Cpus)
	var rows [][]float64
	switch c.Mode {
	case MSelf:
		log.Printf("Calculating the mean squared displacement from frame %d\n", c.Ref)
		rows, err = msd.SelfAtoms(S, c.Ref, c.Start, end, mo)
	default:
		log.Printf("Calculating the squared displacements from atom %d\n", c.Start)
		rows, err = msd.ComputeWithOptions(S, c.Start, end, mo)
	}
	if err != nil {
		return err
	}
	means := msd.Means(rows)
	x := make([]float64, len(means))
	for i := range means {
		x[i] = float64(S.Frame(c.Start + i).Timestep())
	}
	if err = writeResults(c.Out, x, means); err != nil {
		return err
	}
	if c.Plot != "" {
		log.Printf("Writing plot `%s`\n", c.Plot)
		if err = msdplot.Plot(x, means, fmt.Sprintf("%s (%s)", c.Traj, c.Mode), c.Plot); err != nil {
			return err
		}
	}
	if c.HistoBins > 0 {
		name := c.Out + ".histo.json"
		log.Printf("Writing histograms `%s`\n", name)
		hs := histo.FromRows(rows, histo.Uniform(0, c.HistoMax, c.HistoBins))
		for _, h := range hs {
			h.Normalize()
		}
		if err = writeJSON(name, hs); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(name string, x, y []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i := range x {
		if _, err = fmt.Fprintln(w, x[i], y[i]); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

func writeJSON(name string, v interface{}) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = json.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
