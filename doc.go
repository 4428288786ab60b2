// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements signed arbitrary-precision integer arithmetic.

The magnitude of an Int is stored in a little-endian slice of single decimal
digits: index 0 holds the least significant digit. There is no conversion
to or from binary; parsing, addition, subtraction and multiplication all work
digit by digit in base 10 with the schoolbook algorithms. Zero is represented
by an empty digit slice and is never negative.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

    x := new(Int)  // x is an *Int of value 0

Values are usually obtained by parsing decimal text:

    x, err := bigint.Parse("-12345678901234567890")

Parse ignores surrounding white space and accepts an optional leading sign
followed by one or more digits. Any other input yields an error that wraps
ErrInvalidFormat.

Numeric operations are represented as methods of the form:

    func (z *Int) Unary(x *Int) *Int        // z = unary x
    func (z *Int) Binary(x, y *Int) *Int    // z = x binary y

The result is the receiver z. Operands are never modified (unless one of them
is the receiver) and the result never shares storage with an operand, so

    sum := new(Int).Add(a, b)

leaves a and b intact whatever is later done to sum. Operations permit
aliasing of parameters, so it is perfectly ok to write

    sum.Add(sum, x)

to accumulate values x in a sum.

Subtraction is addition of the negated operand; Sub(x, y) is
Add(x, -y) computed without touching y.

The String method renders the canonical decimal form: no leading zeros,
"0" for zero and a single leading '-' for negative values. *Int implements
fmt.Stringer, fmt.Scanner, encoding.TextMarshaler, encoding.TextUnmarshaler,
json.Marshaler and json.Unmarshaler.

Ints are not safe for concurrent mutation; distinct Ints may be used freely
from different goroutines.
*/
package bigint
