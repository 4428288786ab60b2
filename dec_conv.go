// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"io"
)

// setString sets z to the value of s, which must be a non-empty run of
// decimal digit characters, most significant first. Leading zeros are
// accepted and do not count toward the length of z.
//
// On error, z is left untouched and the returned dec is nil.
func (z dec) setString(s string) (dec, error) {
	if len(s) == 0 {
		return nil, errNoDigits
	}
	for i := 0; i < len(s); i++ {
		if ch := s[i]; ch < '0' || ch > '9' {
			return nil, invalidChar(ch)
		}
	}

	// skip insignificant zeros
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	if i == len(s) {
		return z[:0], nil
	}

	// consume s from its end back to the first nonzero digit; the last
	// character lands at index 0.
	z = z.make(len(s) - i)
	for j := range z {
		z[j] = Digit(s[len(s)-1-j] - '0')
	}
	return z, nil
}

// scan reads the longest run of decimal digits from r and sets z to its
// value. The first byte that is not a digit is unread. It returns
// errNoDigits if r does not start with a digit.
func (z dec) scan(r io.ByteScanner) (dec, error) {
	var buf []byte
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ch < '0' || ch > '9' {
			// ch does not belong to number anymore
			if err = r.UnreadByte(); err != nil {
				return nil, err
			}
			break
		}
		buf = append(buf, ch)
	}
	return z.setString(string(buf))
}

// utoa converts x to its decimal ASCII representation.
func (x dec) utoa() []byte {
	return x.itoa(false)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x dec) itoa(neg bool) []byte {
	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	i := len(x)
	if neg {
		i++
	}
	s := make([]byte, i)
	// most significant digit first, the reverse of storage order
	for _, d := range x {
		i--
		s[i] = '0' + byte(d)
	}
	if neg {
		s[0] = '-'
	}
	return s
}

func invalidChar(ch byte) error {
	return fmt.Errorf("invalid character %q", ch)
}
