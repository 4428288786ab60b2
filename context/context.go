// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-accumulating contexts for Ints.
//
// Operators that set a receiver z to function of other arguments like:
//
//    func (c *Context) UnaryOp(z, x *bigint.Int) *bigint.Int
//    func (c *Context) BinaryOp(z, x, y *bigint.Int) *bigint.Int
//
// set z to the result of z.Op(args) and return z.
//
// A Context catches parse errors: if parsing fails, the operation silently
// succeeds with a zero result. Further operations with the context will be
// no-ops (they simply return the receiver z) until (*Context).Err is called to
// check for errors. This allows a long computation over untrusted input to be
// written without checking every intermediate step.
package context

import (
	"github.com/db47h/bigint"
)

// A Context is a wrapper around Ints that records the first error
// encountered.
type Context struct {
	err error
}

// New creates a new context.
func New() *Context {
	return new(Context)
}

// New returns a new *bigint.Int with value 0.
func (c *Context) New() *bigint.Int {
	return new(bigint.Int)
}

// NewInt64 returns a new *bigint.Int set to the value of x.
func (c *Context) NewInt64(x int64) *bigint.Int {
	return bigint.NewInt(x)
}

// Parse returns a new *bigint.Int set to the value of s, in the format
// accepted by bigint.Parse. If s cannot be parsed, or if the context already
// holds an error, the result is 0 and the first error is kept for Err.
func (c *Context) Parse(s string) *bigint.Int {
	if c.err != nil {
		return c.New()
	}
	x, err := bigint.Parse(s)
	if err != nil {
		c.err = err
		return c.New()
	}
	return x
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Set sets z to x and returns z.
func (c *Context) Set(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Set(x)
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Sub(x, y)
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Mul(x, y)
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Neg(x)
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (c *Context) Abs(z, x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return z
	}
	return z.Abs(x)
}
