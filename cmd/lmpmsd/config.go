/*
 * config.go, part of golammps.
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

package main

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode is the kind of displacement computed.
type Mode string

// Accepted modes. MLiteral compares each atom with the atom whose index is
// Start in the same frame (msd.Compute). MSelf compares each atom with itself
// in the reference frame (msd.Self).
const (
	MLiteral Mode = "literal"
	MSelf    Mode = "self"
)

// Config contains the parameters given in the YAML configuration file.
// If it is built by hand, Check should be called before using it.
type Config struct {
	// Traj is the dump file. .gz and .zst files are decompressed on the fly.
	Traj string `yaml:"traj"`

	// Start is the first frame considered (0-based).
	Start int `yaml:"start"`

	// End is the frame after the last one considered. 0 or less means the end of the trajectory.
	End int `yaml:"end"`

	// Mode is the displacement to compute (literal or self). Default: literal.
	Mode Mode `yaml:"mode"`

	// Ref is the reference frame for the self mode.
	Ref int `yaml:"ref"`

	// Cpus is the number of frames processed concurrently. 0 or less means all CPUs.
	Cpus int `yaml:"cpus"`

	// Lenient turns atom count mismatches into warnings instead of errors.
	Lenient bool `yaml:"lenient"`

	// Out is the output file, with one "timestep msd" line per frame. Default: Traj+"_msd.out"
	Out string `yaml:"out"`

	// Plot, if not empty, is the name of the image file for a plot of the results.
	Plot string `yaml:"plot"`

	// HistoBins, if larger than 0, requests a JSON file (Out+".histo.json") with
	// per-frame histograms of the squared displacements, from 0 to HistoMax.
	HistoBins int     `yaml:"histo_bins"`
	HistoMax  float64 `yaml:"histo_max"`
}

// NewConfig opens and decodes the configuration file in path, fills the defaults
// and checks the result.
func NewConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	err = dec.Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check fills the defaults of c and returns an error if a field doesn't meet the requirements.
func (c *Config) Check() error {
	if c.Traj == "" {
		return fmt.Errorf("traj must be given")
	}
	if c.Start < 0 {
		return fmt.Errorf("start must be greater or equal to 0")
	}
	if c.End > 0 && c.End < c.Start {
		return fmt.Errorf("end cannot be lower than start")
	}
	if c.Mode == "" {
		c.Mode = MLiteral
	}
	if c.Mode != MLiteral && c.Mode != MSelf {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Ref < 0 {
		return fmt.Errorf("ref must be greater or equal to 0")
	}
	if c.HistoBins > 0 && c.HistoMax <= 0 {
		return fmt.Errorf("histo_max must be larger than 0 if histo_bins is given")
	}
	if c.Out == "" {
		c.Out = c.Traj + "_msd.out"
	}
	return nil
}
