/*
 * compressed.go, part of golammps.
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
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//multiCloser reads from the decompressor and closes both it and the file.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//compressionFromName returns the compression format implied by the
//extension of fname: "gz", "zst" or "plain".
func compressionFromName(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz", ".gzip":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	default:
		return "plain"
	}
}

//prepSource opens fname and returns an object that will read data from the file, either 'as is'
//or decompressing first, depending on the format string. If the format string is empty,
//it is deduced from the file extension (.gz for gzip, .zst for z-standard, anything else
//is read as plain text). An unknown format string is logged and plain text is assumed.
func prepSource(fname string, format string) (io.ReadCloser, error) {
	if format == "" {
		format = compressionFromName(fname)
	}
	fhandle, err := os.Open(fname)
	if err != nil {
		return nil, newParseError(IOError, UnableToOpen, fname, 0, "", err, "os.Open", "prepSource")
	}
	var dec io.ReadCloser
	switch format {
	case "plain":
		return fhandle, nil
	case "gz":
		dec, err = gzip.NewReader(bufio.NewReader(fhandle))
	case "zst":
		var z *zstd.Decoder
		z, err = zstd.NewReader(bufio.NewReader(fhandle))
		if err == nil {
			dec = zstdCloser{z}
		}
	default:
		log.Printf("Compression format %s not supported. %s will be assumed to be a plain dump file", format, fname)
		return fhandle, nil
	}
	if err != nil {
		fhandle.Close()
		return nil, newParseError(IOError, ReadError, fname, 0, "", err, "prepSource")
	}
	return &multiCloser{Reader: dec, closers: []io.Closer{dec, fhandle}}, nil
}
