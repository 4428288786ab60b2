// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var rnd = rand.New(rand.NewSource(0x5eed))

var decGreaterTests = []struct {
	x, y dec
	r    bool
}{
	{nil, nil, false},
	{dec{1}, nil, true},
	{nil, dec{1}, false},
	{dec{1}, dec{1}, false},
	{dec{2}, dec{1}, true},
	{dec{1}, dec{2}, false},
	{dec{0, 1}, dec{9}, true},
	{dec{9}, dec{0, 1}, false},
	// the most significant difference decides, whatever the lower digits say
	{dec{9, 9, 1}, dec{0, 0, 2}, false},
	{dec{0, 0, 2}, dec{9, 9, 1}, true},
	{dec{1, 5, 3}, dec{2, 4, 3}, true},
	{dec{2, 4, 3}, dec{1, 5, 3}, false},
	{dec{3, 2, 1}, dec{3, 2, 1}, false},
}

func TestDecGreater(t *testing.T) {
	for i, a := range decGreaterTests {
		if r := a.x.greater(a.y); r != a.r {
			t.Errorf("#%d %v.greater(%v) = %v; want %v", i, a.x, a.y, r, a.r)
		}
	}
}

func TestDecNorm(t *testing.T) {
	for i, a := range []struct {
		x, z dec
	}{
		{nil, dec{}},
		{dec{0}, dec{}},
		{dec{0, 0, 0}, dec{}},
		{dec{1, 0, 0}, dec{1}},
		{dec{0, 1, 0}, dec{0, 1}},
		{dec{0, 0, 1}, dec{0, 0, 1}},
	} {
		z := a.x.norm()
		if len(z) != len(a.z) || (len(z) > 0 && cmp.Diff(a.z, z) != "") {
			t.Errorf("#%d %v.norm() = %v; want %v", i, a.x, z, a.z)
		}
	}
}

type decFunNN func(z, x, y dec) dec
type decArgNN struct {
	z, x, y dec
}

var decSumNN = []decArgNN{
	{},
	{dec{1}, nil, dec{1}},
	{dec{0, 1}, dec{1}, dec{9}},
	{dec{0, 0, 0, 1}, dec{9, 9, 9}, dec{1}},
	{dec{0, 1, 1, 1, 1, 1, 1, 1, 1, 1}, dec{9, 8, 7, 6, 5, 4, 3, 2, 1}, dec{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{dec{0, 0, 0, 1}, nil, dec{0, 0, 0, 1}},
	{dec{0, 0, 0, 1}, dec{0, 0, 9}, dec{0, 0, 1}},
}

var decProdNN = []decArgNN{
	{},
	{nil, nil, nil},
	{nil, dec{1, 9, 9}, nil},
	{dec{1, 9, 9}, dec{1, 9, 9}, dec{1}},
	{dec{1, 8, 0, 2, 8, 9}, dec{1, 9, 9}, dec{1, 9, 9}},
	{dec{6, 5, 1}, dec{2, 1}, dec{3, 1}},
	{dec{0, 0, 0, 0, 1}, dec{0, 0, 1}, dec{0, 0, 1}},
	{decFromString("5332114"), dec{1, 2, 3, 4}, dec{4, 3, 2, 1}},
	// 3^100 * 3^28 = 3^128
	{
		decFromString("11790184577738583171520872861412518665678211592275841109096961"),
		decFromString("515377520732011331036461129765621272702107522001"),
		decFromString("22876792454961"),
	},
	// z = 111....1 (2000 digits)
	// x = 10^(99*20) + ... + 10^40 + 10^20 + 1
	// y = 111....1 (20 digits)
	{
		decFromString(strings.Repeat("1", 2000)),
		decFromString("1" + strings.Repeat(strings.Repeat("0", 19)+"1", 99)),
		decFromString(strings.Repeat("1", 20)),
	},
}

func decFromString(s string) dec {
	x, err := dec(nil).setString(s)
	if err != nil {
		panic(err)
	}
	return x
}

func decEqual(x, y dec) bool {
	return len(x) == len(y) && (len(x) == 0 || cmp.Equal(x, y))
}

func TestDecSet(t *testing.T) {
	for _, a := range decSumNN {
		z := dec(nil).set(a.z)
		if !decEqual(z, a.z) {
			t.Errorf("got z = %v; want %v", z, a.z)
		}
		if len(z) > 0 && alias(z, a.z) {
			t.Errorf("set(%v) shares storage with its argument", a.z)
		}
	}
}

func decTestFunNN(t *testing.T, msg string, f decFunNN, a decArgNN) {
	z := f(nil, a.x, a.y)
	if !decEqual(z, a.z) {
		t.Errorf("%s%+v\n\tgot z = %v; want %v", msg, a, z, a.z)
	}
}

func TestDecFunNN(t *testing.T) {
	for _, a := range decSumNN {
		arg := a
		decTestFunNN(t, "add", dec.add, arg)

		arg = decArgNN{a.z, a.y, a.x}
		decTestFunNN(t, "add symmetric", dec.add, arg)

		arg = decArgNN{a.x, a.z, a.y}
		decTestFunNN(t, "sub", dec.sub, arg)

		arg = decArgNN{a.y, a.z, a.x}
		decTestFunNN(t, "sub symmetric", dec.sub, arg)
	}

	for _, a := range decProdNN {
		arg := a
		decTestFunNN(t, "mul", dec.mul, arg)

		arg = decArgNN{a.z, a.y, a.x}
		decTestFunNN(t, "mul symmetric", dec.mul, arg)
	}
}

// The operands of add, sub and mul are read only.
func TestDecFunNN_operandsUnchanged(t *testing.T) {
	for _, f := range []struct {
		name string
		fn   decFunNN
	}{
		{"add", dec.add},
		{"sub", dec.sub},
		{"mul", dec.mul},
	} {
		for i := 0; i < 100; i++ {
			x, y := rndDec(1+rnd.Intn(40)), rndDec(1+rnd.Intn(40))
			if y.greater(x) {
				x, y = y, x
			}
			xc, yc := dec(nil).set(x), dec(nil).set(y)
			z := f.fn(nil, x, y)
			if !decEqual(x, xc) || !decEqual(y, yc) {
				t.Fatalf("%s modified its operands: %v, %v; want %v, %v", f.name, x, y, xc, yc)
			}
			if len(z) > 0 && (alias(z, x) || alias(z, y)) {
				t.Fatalf("%s result shares storage with an operand", f.name)
			}
		}
	}
}

// Operations accept the receiver as one of the operands.
func TestDecFunNN_alias(t *testing.T) {
	for i := 0; i < 100; i++ {
		x, y := rndDec(1+rnd.Intn(40)), rndDec(1+rnd.Intn(40))
		if y.greater(x) {
			x, y = y, x
		}
		for _, f := range []struct {
			name string
			fn   decFunNN
		}{
			{"add", dec.add},
			{"sub", dec.sub},
			{"mul", dec.mul},
		} {
			want := f.fn(nil, x, y)
			z := dec(nil).set(x)
			if z = f.fn(z, z, y); !decEqual(z, want) {
				t.Fatalf("%s(z, z, y) = %v; want %v", f.name, z, want)
			}
			z = dec(nil).set(y)
			if z = f.fn(z, x, z); !decEqual(z, want) {
				t.Fatalf("%s(z, x, z) = %v; want %v", f.name, z, want)
			}
		}
	}
}

func TestDecSub_underflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("1 - 2 did not panic")
		}
	}()
	dec(nil).sub(dec{1}, dec{2})
}

func TestDecShl(t *testing.T) {
	for i, a := range []struct {
		x dec
		s uint
		z dec
	}{
		{nil, 3, nil},
		{dec{1}, 0, dec{1}},
		{dec{1}, 2, dec{0, 0, 1}},
		{dec{3, 2, 1}, 1, dec{0, 3, 2, 1}},
	} {
		if z := dec(nil).shl(a.x, a.s); !decEqual(z, a.z) {
			t.Errorf("#%d shl(%v, %d) = %v; want %v", i, a.x, a.s, z, a.z)
		}
		// in place
		x := dec(nil).set(a.x)
		if z := x.shl(x, a.s); !decEqual(z, a.z) {
			t.Errorf("#%d in place shl(%v, %d) = %v; want %v", i, a.x, a.s, z, a.z)
		}
	}
}

func TestDecMulDigit(t *testing.T) {
	for i, a := range []struct {
		x dec
		d Digit
		z dec
	}{
		{nil, 7, nil},
		{dec{1, 2, 3}, 0, nil},
		{dec{1, 2, 3}, 1, dec{1, 2, 3}},
		{dec{1, 2}, 4, dec{4, 8}},
		// 99 * 9 = 891: the final carry becomes the top digit
		{dec{9, 9}, 9, dec{1, 9, 8}},
		// 25 * 4 = 100
		{dec{5, 2}, 4, dec{0, 0, 1}},
	} {
		if z := dec(nil).mulDigit(a.x, a.d); !decEqual(z, a.z) {
			t.Errorf("#%d mulDigit(%v, %d) = %v; want %v", i, a.x, a.d, z, a.z)
		}
	}
}

func TestDecSetString(t *testing.T) {
	for _, a := range []struct {
		s  string
		z  dec
		ok bool
	}{
		{"", nil, false},
		{"0", nil, true},
		{"0000", nil, true},
		{"0012", dec{2, 1}, true},
		{"1023", dec{3, 2, 0, 1}, true},
		{"1000", dec{0, 0, 0, 1}, true},
		{"12 3", nil, false},
		{"-1", nil, false},
		{"1a", nil, false},
	} {
		z, err := dec(nil).setString(a.s)
		if (err == nil) != a.ok {
			t.Errorf("setString(%q): err = %v; want ok = %v", a.s, err, a.ok)
			continue
		}
		if !decEqual(z, a.z) {
			t.Errorf("setString(%q) = %v; want %v", a.s, z, a.z)
		}
	}
}

func TestDecUtoa(t *testing.T) {
	for _, a := range []struct {
		x   dec
		neg bool
		s   string
	}{
		{nil, false, "0"},
		{nil, true, "0"},
		{dec{1}, false, "1"},
		{dec{0, 0, 0, 1}, false, "1000"},
		{dec{6, 5, 1}, true, "-156"},
	} {
		if s := string(a.x.itoa(a.neg)); s != a.s {
			t.Errorf("%v.itoa(%v) = %s; want %s", a.x, a.neg, s, a.s)
		}
		if !a.neg {
			if s := string(a.x.utoa()); s != a.s {
				t.Errorf("%v.utoa() = %s; want %s", a.x, s, a.s)
			}
		}
	}
}

func TestDecStringRoundtrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndDec(1 + rnd.Intn(100))
		s := string(x.utoa())
		z, err := dec(nil).setString(s)
		if err != nil {
			t.Fatal(err)
		}
		if !decEqual(z, x) {
			t.Fatalf("setString(%s) = %v; want %v", s, z, x)
		}
	}
}

func BenchmarkDecMul(b *testing.B) {
	x, y := rndDec(200), rndDec(200)
	var z dec
	for i := 0; i < b.N; i++ {
		z = z.mul(x, y)
	}
}

func BenchmarkDecAdd(b *testing.B) {
	x, y := rndDec(1000), rndDec(1000)
	var z dec
	for i := 0; i < b.N; i++ {
		z = z.add(x, y)
	}
}

// rndDec returns a random normalized dec value of n digits. n must be > 0.
func rndDec(n int) dec {
	x := make(dec, n)
	for i := range x {
		x[i] = Digit(rnd.Intn(_B))
	}
	x[n-1] = Digit(1 + rnd.Intn(_B-1))
	return x
}
