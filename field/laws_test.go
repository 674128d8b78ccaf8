// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field_test

import (
	"math"
	"strings"
	"testing"

	"neugram.io/cplx"
	"neugram.io/cplx/field"
	"neugram.io/cplx/internal/testutil/testlog"
)

// badOne claims 2 as its multiplicative identity.
type badOne struct{ v float64 }

func (a badOne) Add(b badOne) badOne { return badOne{a.v + b.v} }
func (a badOne) Sub(b badOne) badOne { return badOne{a.v - b.v} }
func (a badOne) Mul(b badOne) badOne { return badOne{a.v * b.v} }
func (a badOne) Div(b badOne) badOne { return badOne{a.v / b.v} }

func (badOne) Zero() badOne { return badOne{} }
func (badOne) One() badOne  { return badOne{2} }

func (a badOne) IsZero() bool { return a.v == 0 }
func (a badOne) IsOne() bool  { return a.v == 1 }

func (a badOne) Equal(b badOne) bool { return a.v == b.v }

func (a *badOne) SetZero() { a.v = 0 }
func (a *badOne) SetOne()  { a.v = 1 }

func TestCheckLawsComplex(t *testing.T) {
	testlog.Start(t)

	samples := []cplx.Complex{
		cplx.Zero(),
		cplx.One(),
		cplx.I(),
		cplx.New(3, 4),
		cplx.New(1.03, 2.94),
		cplx.New(-2.5, 0.5),
		cplx.New(1.23, 9.324),
	}
	approx := func(a, b cplx.Complex) bool { return a.ApproxEqual(b, 1e-12) }
	for _, v := range field.CheckLaws(samples, approx) {
		t.Errorf("violation: %v", v)
	}
}

func TestCheckLawsScalar(t *testing.T) {
	testlog.Start(t)

	samples := []real64{r(0), r(1), r(-3), r(0.1), r(1e10), r(-2.5e-7)}
	approx := func(a, b real64) bool { return a.ApproxEqual(b, 1e-12) }
	for _, v := range field.CheckLaws(samples, approx) {
		t.Errorf("violation: %v", v)
	}
}

func TestCheckLawsSkipsNaN(t *testing.T) {
	testlog.Start(t)

	samples := []cplx.Complex{cplx.New(math.NaN(), 0), cplx.New(1, 1)}
	approx := func(a, b cplx.Complex) bool { return a.ApproxEqual(b, 1e-12) }
	if vs := field.CheckLaws(samples, approx); len(vs) != 0 {
		t.Errorf("unexpected violations: %v", vs)
	}
}

func TestCheckLawsReportsBrokenIdentity(t *testing.T) {
	testlog.Start(t)

	samples := []badOne{{1}, {3}}
	approx := func(a, b badOne) bool { return math.Abs(a.v-b.v) <= 1e-12 }
	vs := field.CheckLaws(samples, approx)

	want := []string{
		field.LawOneIsOne,
		field.LawMulIdentity,
		field.LawMulIdentity,
	}
	if len(vs) != len(want) {
		t.Fatalf("got %d violations, want %d: %v", len(vs), len(want), vs)
	}
	for i, v := range vs {
		if v.Law != want[i] {
			t.Errorf("violation %d: law %q, want %q", i, v.Law, want[i])
		}
	}
	if got := vs[1].Got; got.v != 2 {
		t.Errorf("1 * badOne.One() = %v, want 2", got.v)
	}
	if s := vs[2].String(); !strings.HasPrefix(s, field.LawMulIdentity+": x={3}") {
		t.Errorf("String()=%q", s)
	}
}

func TestCheckLawsOverflowingProducts(t *testing.T) {
	testlog.Start(t)

	// Every product of these two overflows to a value carrying NaN,
	// identically in either operand order.
	a, b := cplx.New(1e160, 1e160), cplx.New(1e160, -1e160)
	samples := []cplx.Complex{a, b}
	approx := func(x, y cplx.Complex) bool { return x.ApproxEqual(y, 1e-12) }
	vs := field.CheckLaws(samples, approx)
	if len(vs) == 0 {
		t.Fatal("expected division violations for samples whose squared magnitude overflows")
	}
	for _, v := range vs {
		if v.Law != field.LawDivMulRoundTrip {
			t.Errorf("unexpected violation %v", v)
		}
	}
}

func TestCheckLawsReportsUnderflowDivision(t *testing.T) {
	testlog.Start(t)

	tiny := cplx.New(1e-200, 0)
	samples := []cplx.Complex{cplx.One(), tiny}
	approx := func(a, b cplx.Complex) bool { return a.ApproxEqual(b, 1e-12) }
	vs := field.CheckLaws(samples, approx)
	if len(vs) == 0 {
		t.Fatal("expected division violations for a divisor whose squared magnitude underflows")
	}
	for _, v := range vs {
		if v.Law != field.LawDivMulRoundTrip {
			t.Errorf("unexpected law %q", v.Law)
		}
		if v.Y != tiny {
			t.Errorf("violation with divisor %v, want %v", v.Y, tiny)
		}
	}
}
