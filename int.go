// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"math"
)

// An Int represents a signed multi-precision integer.
// The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather than Int values, and
// each unique Int value requires its own unique *Int pointer. To "copy" an Int
// value, an existing (or newly allocated) Int must be set to a new value using
// the Int.Set method; shallow copies of Ints are not supported and may lead to
// errors.
type Int struct {
	neg bool // sign
	dig int  // number of digits in abs
	abs dec  // absolute value of the integer
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Int) Sign() int {
	if debugInt {
		x.validate()
	}
	if x.dig == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return x.dig == 0
}

// Len returns the number of decimal digits of |x|. The result is 0 for x == 0.
func (x *Int) Len() int {
	return x.dig
}

// Digits returns a copy of the digits of |x|, least significant first. The
// result is empty for x == 0.
func (x *Int) Digits() []Digit {
	return append([]Digit(nil), x.abs...)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		// two's complement negation is also correct for math.MinInt64
		u = -u
	}
	z.abs = z.abs.setUint64(u)
	z.neg = x < 0
	return z.norm()
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z.norm()
}

// Int64 returns the int64 representation of x and a boolean reporting
// whether x fits in an int64. If it does not, the result is 0.
func (x *Int) Int64() (int64, bool) {
	// 19 digits always fit in a uint64
	if x.dig > 19 {
		return 0, false
	}
	var u uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		u = u*_B + uint64(x.abs[i])
	}
	if x.neg {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u - 1) - 1, true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Set sets z to x and returns z. The digits of x are copied; z and x share no
// storage afterwards.
func (z *Int) Set(x *Int) *Int {
	if debugInt {
		x.validate()
	}
	if z != x {
		z.neg = x.neg
		z.dig = x.dig
		z.abs = z.abs.set(x.abs)
	}
	return z
}

// Neg sets z to -x and returns z. The sign of zero is left untouched.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = z.dig > 0 && !z.neg
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
//
// x and y are never modified, except when z is one of them. The digits of z
// never share storage with x or y.
func (z *Int) Add(x, y *Int) *Int {
	if debugInt {
		x.validate()
		y.validate()
	}

	switch {
	case x.dig == 0:
		return z.Set(y)
	case y.dig == 0:
		return z.Set(x)
	}

	neg := x.neg
	switch {
	case x.neg == y.neg:
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	case x.abs.greater(y.abs):
		// x + (-y) == x - y
		// (-x) + y == -(x - y)
		z.abs = z.abs.sub(x.abs, y.abs)
	default:
		// x + (-y) == -(y - x)
		// (-x) + y == y - x
		neg = y.neg
		z.abs = z.abs.sub(y.abs, x.abs)
	}
	z.neg = neg
	return z.norm()
}

// Sub sets z to the difference x-y and returns z.
//
// It is computed as x + (-y) without modifying y.
func (z *Int) Sub(x, y *Int) *Int {
	ny := Int{neg: y.dig > 0 && !y.neg, dig: y.dig, abs: y.abs}
	return z.Add(x, &ny)
}

// Mul sets z to the product x*y and returns z.
//
// Multiplication uses the schoolbook method: x is multiplied by each digit of
// y in turn and the shifted partial products are summed.
func (z *Int) Mul(x, y *Int) *Int {
	if debugInt {
		x.validate()
		y.validate()
	}
	if x.dig == 0 || y.dig == 0 {
		z.abs = z.abs[:0]
		return z.norm()
	}
	neg := x.neg != y.neg
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = neg
	return z.norm()
}

// norm truncates the most significant zero digits of z, updates its digit
// count and clears the sign of zero.
func (z *Int) norm() *Int {
	z.abs = z.abs.norm()
	z.dig = len(z.abs)
	if z.dig == 0 {
		z.neg = false
	}
	if debugInt {
		z.validate()
	}
	return z
}

func (x *Int) validate() {
	if !debugInt {
		// avoid performance bugs
		panic("validate called but debugInt is not set")
	}
	if x.dig != len(x.abs) {
		panic(fmt.Sprintf("digit count %d != real digit count %d for %v", x.dig, len(x.abs), x.abs))
	}
	m := len(x.abs)
	if m == 0 {
		if x.neg {
			panic("negative zero")
		}
		return
	}
	for i, d := range x.abs {
		if d >= _B {
			panic(fmt.Sprintf("digit %d at position %d of %v is out of range", d, i, x.abs))
		}
	}
	if x.abs[m-1] == 0 {
		panic(fmt.Sprintf("most significant digit of %v is zero", x.abs))
	}
}
