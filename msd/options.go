package msd

import "runtime"

// Options contains various options for the functions of this package.
type Options struct {
	cpus int
}

// DefaultOptions returns options that use all logical CPUs.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = runtime.NumCPU()
	return r
}

// Cpus returns the number of frames processed concurrently,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}
