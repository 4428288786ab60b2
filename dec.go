// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

const debugInt = true

// A Digit is a single decimal digit in the range [0, 9].
type Digit uint8

// _B is the number base of a dec.
const _B = 10

// dec is an unsigned integer x of the form
//
//   x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] < 10 and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type dec []Digit

// norm truncates the most significant zero digits of z. The result is the
// empty slice if z holds no nonzero digit.
func (z dec) norm() dec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(dec, n, n+e)
}

func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z dec) setUint64(x uint64) dec {
	if x == 0 {
		return z[:0]
	}
	n := 0
	for t := x; t != 0; t /= _B {
		n++
	}
	z = z.make(n)
	for i := range z {
		z[i] = Digit(x % _B)
		x /= _B
	}
	return z
}

// greater reports whether |x| > |y|. Both x and y must be normalized, so that
// a longer slice always holds the larger value.
//
// For equal lengths, every position is visited from the least to the most
// significant digit and each difference overwrites the previous outcome: the
// most significant differing digit decides.
func (x dec) greater(y dec) bool {
	if len(x) != len(y) {
		return len(x) > len(y)
	}
	gt := false
	for i, d := range x {
		switch {
		case d > y[i]:
			gt = true
		case d < y[i]:
			gt = false
		}
	}
	return gt
}

// add sets z = x + y.
func (z dec) add(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := add10VV(z[0:n], x, y)
	if m > n {
		c = add10VW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = x - y. x must be greater than or equal to y.
//
// Borrows are propagated through z only; x and y are read, never written.
func (z dec) sub(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	b := sub10VV(z[0:n], x, y)
	if m > n {
		b = sub10VW(z[n:], x[n:], b)
	}
	if b != 0 {
		panic("underflow")
	}

	return z.norm()
}

// mulDigit sets z = x * d.
func (z dec) mulDigit(x dec, d Digit) dec {
	m := len(x)
	if m == 0 || d == 0 {
		return z[:0]
	}
	z = z.make(m + 1)
	// mulAdd10VW visits every digit of x before handing back the carry, so the
	// final carry is always the most significant digit of the product.
	z[m] = mulAdd10VW(z[0:m], x, d, 0)
	return z.norm()
}

// shl sets z = x * 10^s, that is x with s zero digits prepended at the least
// significant end.
func (z dec) shl(x dec, s uint) dec {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	z = z.make(m + int(s))
	copy(z[s:], x) // handles overlap when z aliases x
	for i := uint(0); i < s; i++ {
		z[i] = 0
	}
	return z
}

// mul sets z = x * y with the schoolbook method: one partial product per
// digit of y, shifted into place and accumulated with add.
func (z dec) mul(x, y dec) dec {
	m := len(x)
	n := len(y)

	if m == 0 || n == 0 {
		return z[:0]
	}

	// z is accumulated in place; it must not share storage with an operand
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z[:0]

	var p dec // partial product
	for i, d := range y {
		p = p.mulDigit(x, d)
		p = p.shl(p, uint(i))
		z = z.add(z, p)
	}

	return z.norm()
}

// alias reports whether x and y share the same base array.
func alias(x, y dec) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
