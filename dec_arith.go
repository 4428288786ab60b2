// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the single digit arithmetic primitives that dec
// operations are built on. The vector functions operate on slices of equal
// length, or on the shortest of the lengths involved:
//
//	for i := 0; i < len(z) && i < len(x); i++
//
// which also lets the compiler drop bounds checks.

package bigint

//-----------------------------------------------------------------------------
// Arithmetic primitives
//

// add10WW returns the digit s and carry c of x + y + cIn. The carry is either
// 0 or 1.
func add10WW(x, y, cIn Digit) (s, c Digit) {
	s = x + y + cIn
	if s >= _B {
		return s - _B, 1
	}
	return s, 0
}

// sub10WW returns the digit d and borrow b of x - y - bIn. When x, less the
// pending borrow, is smaller than y, ten is borrowed from the next digit.
func sub10WW(x, y, bIn Digit) (d, b Digit) {
	if x < y+bIn {
		return x + _B - y - bIn, 1
	}
	return x - y - bIn, 0
}

// mulAdd10WW returns the digit and carry of x * y + c.
func mulAdd10WW(x, y, c Digit) (hi, lo Digit) {
	// at most 9*9 + 8 = 89, fits a Digit
	p := x*y + c
	return p / _B, p % _B
}

// add10VV sets z = x + y and returns the carry. The resulting carry c is
// either 0 or 1.
func add10VV(z, x, y []Digit) (c Digit) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = add10WW(x[i], y[i], c)
	}
	return
}

// sub10VV sets z = x - y and returns the borrow. The resulting borrow b is
// either 0 or 1.
func sub10VV(z, x, y []Digit) (b Digit) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], b = sub10WW(x[i], y[i], b)
	}
	return
}

// add10VW sets z = x + y, with y a single digit carry, and returns the carry
// out of the most significant position.
func add10VW(z, x []Digit, y Digit) (c Digit) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			// copy remaining digits
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = add10WW(x[i], 0, c)
	}
	return
}

// sub10VW sets z = x - y, with y a single digit borrow, and returns the
// borrow out of the most significant position.
func sub10VW(z, x []Digit, y Digit) (b Digit) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if b == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], b = sub10WW(x[i], 0, b)
	}
	return
}

// mulAdd10VW sets z = x * y + r and returns the carry. Every digit of x is
// visited before the carry is returned.
func mulAdd10VW(z, x []Digit, y, r Digit) (c Digit) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAdd10WW(x[i], y, c)
	}
	return
}
