// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion functions.

package bigint

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidFormat is the error reported, possibly wrapped, when a string
// does not represent a decimal integer. Use errors.Is to test for it.
var ErrInvalidFormat = errors.New("bigint: invalid format")

// String returns the decimal representation of x: no leading zeros, "0" for
// zero and a single leading '-' for negative values.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(x.neg))
}

// Append appends the string representation of x, as generated by x.String, to
// buf and returns the extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.itoa(x.neg)...)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be an integer of the same format as accepted by Parse. If
// the operation failed, the value of z is unchanged but the returned value is
// nil.
func (z *Int) SetString(s string) (*Int, bool) {
	if i, err := z.Parse(s); err == nil {
		return i, true
	}
	return nil, false
}

// Parse parses s which must contain the text representation of a decimal
// integer:
//
//     number = { space } [ sign ] digit { digit } { space } .
//     sign   = "+" | "-" .
//     digit  = "0" ... "9" .
//
// Leading and trailing white space is ignored, but white space between
// digits is not allowed. Leading zeros are accepted; "-0" and "+000" denote
// zero.
//
// It sets z to the value of s and returns z. On error, the returned *Int is
// nil, z is unchanged, and err wraps ErrInvalidFormat.
func (z *Int) Parse(s string) (*Int, error) {
	t := strings.TrimSpace(s)
	neg := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if strings.ContainsAny(t, "+-") {
		return nil, parseError(s, errMisplacedSign)
	}
	abs, err := z.abs.setString(t)
	if err != nil {
		return nil, parseError(s, err)
	}
	z.abs = abs
	z.neg = neg
	return z.norm(), nil
}

// Parse is like new(Int).Parse(s).
func Parse(s string) (*Int, error) {
	return new(Int).Parse(s)
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// safe initialization of global variables holding constants.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

func parseError(s string, err error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidFormat, s, err)
}

var _ fmt.Scanner = new(Int) // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'd', 's' and 'v', all of which denote a
// decimal integer. Scanning stops at the first character that is not a digit.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		return errors.New("Int.Scan: invalid verb")
	}
	s.SkipSpace() // skip leading space characters
	_, err := z.scan(byteReader{s})
	return err
}

// scan sets z to the integer value read from r: an optional sign followed by
// the longest possible run of decimal digits.
func (z *Int) scan(r io.ByteScanner) (*Int, error) {
	neg, err := scanSign(r)
	if err != nil {
		return nil, err
	}
	abs, err := z.abs.scan(r)
	if err != nil {
		if errors.Is(err, errNoDigits) {
			err = fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, err
	}
	z.abs = abs
	z.neg = neg
	return z.norm(), nil
}
