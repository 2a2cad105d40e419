package lammps

//default cap for the number of atoms reserved from a NUMBER OF ATOMS section.
const defaultMaxReserve = 1 << 20

// Options contains the settings for ParseWithOptions and ParseReader.
type Options struct {
	strictCount bool
	maxReserve  int
	compression string
}

// DefaultOptions returns the options used by Parse: the number of atoms in
// each frame must match the declared one, the compression is deduced from the
// file extension, and at most 2^20 atoms are reserved in advance per frame.
func DefaultOptions() *Options {
	r := new(Options)
	r.strictCount = true
	r.maxReserve = defaultMaxReserve
	r.compression = ""
	return r
}

// StrictCount returns whether a frame with a number of atoms different from the
// declared one is an error, and sets it to a new value, if given.
// If false, the mismatch is only logged.
func (O *Options) StrictCount(strict ...bool) bool {
	if len(strict) > 0 {
		O.strictCount = strict[0]
	}
	return O.strictCount
}

// MaxReserve returns the largest number of atoms that will be allocated in
// advance for a frame, and sets it to a new value, if given. Frames can hold
// more atoms than this, the value only limits the pre-allocation.
func (O *Options) MaxReserve(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxReserve = n[0]
	}
	return O.maxReserve
}

// Compression returns the compression format of the input, and sets it to a new
// value, if given. Valid values are "gz", "zst", "plain" and the empty string,
// which means that the format is deduced from the file extension.
func (O *Options) Compression(format ...string) string {
	if len(format) > 0 {
		O.compression = format[0]
	}
	return O.compression
}
