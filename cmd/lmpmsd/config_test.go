package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "conf.yaml")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestNewConfig(Te *testing.T) {
	c, err := NewConfig(writeConfig(Te, "traj: water.lammpstrj\nmode: self\nref: 1\nhisto_bins: 10\nhisto_max: 2.5\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if c.Mode != MSelf || c.Ref != 1 || c.HistoBins != 10 || c.HistoMax != 2.5 {
		Te.Errorf("wrong config %+v", c)
	}
	if c.Out != "water.lammpstrj_msd.out" {
		Te.Errorf("wrong default output %q", c.Out)
	}
	c, err = NewConfig(writeConfig(Te, "traj: a.lammpstrj\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if c.Mode != MLiteral {
		Te.Errorf("the default mode should be literal, got %q", c.Mode)
	}
}

func TestConfigCheck(Te *testing.T) {
	bad := map[string]string{
		"no traj":       "start: 1\n",
		"negative":      "traj: a\nstart: -1\n",
		"reversed":      "traj: a\nstart: 3\nend: 2\n",
		"mode":          "traj: a\nmode: cross\n",
		"histo":         "traj: a\nhisto_bins: 5\n",
		"unknown field": "traj: a\nframes: 3\n",
	}
	for name, content := range bad {
		if _, err := NewConfig(writeConfig(Te, content)); err == nil {
			Te.Errorf("%s: config should not be accepted", name)
		}
	}
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	c := &Config{
		Traj:      "../../test/two_frames.lammpstrj",
		Out:       filepath.Join(dir, "msd.out"),
		Plot:      filepath.Join(dir, "msd.png"),
		HistoBins: 4,
		HistoMax:  10,
	}
	if err := c.Check(); err != nil {
		Te.Fatal(err)
	}
	if err := run(c); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(c.Out)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) != 2 || strings.Fields(lines[1])[1] != "4" {
		Te.Errorf("wrong output %q", lines)
	}
	for _, name := range []string{c.Plot, c.Out + ".histo.json"} {
		if _, err := os.Stat(name); err != nil {
			Te.Errorf("missing output: %v", err)
		}
	}
}

func TestWriteResultsFullDisk(Te *testing.T) {
	const full = "/dev/full"
	if _, err := os.Stat(full); err != nil {
		Te.Skipf("%s not available: %v", full, err)
	}
	if err := writeResults(full, []float64{0, 1}, []float64{1.5, 4}); err == nil {
		Te.Errorf("a failed write should be reported")
	}
	if err := writeJSON(full, []int{1, 2}); err == nil {
		Te.Errorf("a failed JSON write should be reported")
	}
	name := filepath.Join(Te.TempDir(), "ok.out")
	if err := writeResults(name, []float64{0, 1}, []float64{1.5, 4}); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if string(b) != "0 1.5\n1 4\n" {
		Te.Errorf("wrong output %q", b)
	}
}
