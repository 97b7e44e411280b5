// Copyright 2024 The Agreestat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agreefmt reads paired-sample data files and writes
// agreement report tables.
//
// The data format is line oriented: each record holds the two
// measurements of one subject, x then y, separated by whitespace.
// Blank lines and lines starting with '#' are ignored.
package agreefmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads paired-sample records. Its API is modeled on
// bufio.Scanner: Scan advances to the next record, Pair returns it,
// and the caller checks Err once Scan returns false.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error

	x, y float64
}

// A SyntaxError reports a malformed record on a particular line of a
// paired-sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// NewReader constructs a reader to parse paired-sample records from
// r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.x, r.y = 0, 0
}

// Scan advances the reader to the next record and returns true if one
// was read. When it returns false, the caller should use the Err
// method to distinguish end of input from an I/O or syntax error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			r.err = &SyntaxError{r.fileName, r.lineNum, fmt.Sprintf("want 2 measurements, have %d", len(fields))}
			return false
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			r.err = &SyntaxError{r.fileName, r.lineNum, "parsing x measurement: " + err.Error()}
			return false
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			r.err = &SyntaxError{r.fileName, r.lineNum, "parsing y measurement: " + err.Error()}
			return false
		}
		r.x, r.y = x, y
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum, err)
	}
	return false
}

// Pair returns the last record read.
func (r *Reader) Pair() (x, y float64) {
	return r.x, r.y
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadPairs reads every record from ior into two parallel series.
func ReadPairs(ior io.Reader, fileName string) (x, y []float64, err error) {
	r := NewReader(ior, fileName)
	for r.Scan() {
		xi, yi := r.Pair()
		x = append(x, xi)
		y = append(y, yi)
	}
	if err := r.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
