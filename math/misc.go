// Package math provides helpers built on the arithmetic of bigint.Int.
//
// All functions follow the bigint convention: the result is stored in z, which
// is also returned, and z may be one of the operands.
package math

import (
	"github.com/db47h/bigint"
)

// constants
var (
	one = bigint.NewInt(1)
)

// Sum sets z to the sum of xs and returns z. The sum of no values is 0.
func Sum(z *bigint.Int, xs ...*bigint.Int) *bigint.Int {
	t := new(bigint.Int)
	for _, x := range xs {
		t.Add(t, x)
	}
	return z.Set(t)
}

// Product sets z to the product of xs and returns z. The product of no values
// is 1.
func Product(z *bigint.Int, xs ...*bigint.Int) *bigint.Int {
	t := new(bigint.Int).Set(one)
	for _, x := range xs {
		if x.IsZero() {
			return z.Set(x)
		}
		t.Mul(t, x)
	}
	return z.Set(t)
}

// Poly sets z to the value of the polynomial with the given coefficients at x,
// and returns z. Coefficients are given from the highest degree down to the
// constant term, so Poly(z, x, a, b, c) computes a×x² + b×x + c.
//
// The polynomial is evaluated with Horner's method.
func Poly(z, x *bigint.Int, coeffs ...*bigint.Int) *bigint.Int {
	t := new(bigint.Int)
	for _, c := range coeffs {
		t.Mul(t, x)
		t.Add(t, c)
	}
	return z.Set(t)
}

// Factorial sets z to n! and returns z.
func Factorial(z *bigint.Int, n uint64) *bigint.Int {
	t := new(bigint.Int).Set(one)
	f := new(bigint.Int)
	for i := uint64(2); i <= n; i++ {
		t.Mul(t, f.SetUint64(i))
	}
	return z.Set(t)
}

// Pow sets z to x**n and returns z. Pow(z, x, 0) is 1 for any x, including 0.
func Pow(z, x *bigint.Int, n uint64) *bigint.Int {
	t := new(bigint.Int).Set(one)
	b := new(bigint.Int).Set(x)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			t.Mul(t, b)
		}
		if n > 1 {
			b.Mul(b, b)
		}
	}
	return z.Set(t)
}
