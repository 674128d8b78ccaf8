// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "fmt"

// Names of the laws checked by CheckLaws.
const (
	LawZeroIsZero      = "zero-is-zero"
	LawOneIsOne        = "one-is-one"
	LawAddIdentity     = "additive-identity"
	LawMulIdentity     = "multiplicative-identity"
	LawAddInverse      = "additive-inverse"
	LawSetZero         = "set-zero"
	LawSetOne          = "set-one"
	LawAddCommutative  = "add-commutative"
	LawMulCommutative  = "mul-commutative"
	LawDivMulRoundTrip = "div-mul-round-trip"
)

// A Violation is one law that failed for the operands X and Y.
// Got is the value the law produced. Y is unused by laws of one operand.
type Violation[T any] struct {
	Law  string
	X, Y T
	Got  T
}

func (v Violation[T]) String() string {
	return fmt.Sprintf("%s: x=%v y=%v got=%v", v.Law, v.X, v.Y, v.Got)
}

// same is Equal, except that two results that are both unequal to
// themselves (NaN-carrying, for floats) count as the same.
func same[T Element[T]](a, b T) bool {
	return a.Equal(b) || (!a.Equal(a) && !b.Equal(b))
}

// CheckLaws checks the field laws of T over samples and returns every
// violation, ordered by sample.
//
// The identity laws, x-x == 0 and commutativity are checked with
// exact equality. Commutativity accepts two NaN-carrying results,
// which appear when finite samples overflow. Division is checked by
// (x/y)*y ≈ x for every nonzero y, with approx deciding closeness. A sample that is not Equal to
// itself (a NaN, for floats) is skipped. Samples are expected to be
// finite: infinities legitimately break x*1 == x.
func CheckLaws[T Element[T], P Mutable[T]](samples []T, approx func(a, b T) bool) []Violation[T] {
	var vs []Violation[T]
	fail := func(law string, x, y, got T) {
		vs = append(vs, Violation[T]{Law: law, X: x, Y: y, Got: got})
	}

	zero, one := Zero[T](), One[T]()
	if !zero.IsZero() {
		fail(LawZeroIsZero, zero, zero, zero)
	}
	if !one.IsOne() {
		fail(LawOneIsOne, one, one, one)
	}

	for _, x := range samples {
		if !x.Equal(x) {
			continue
		}
		if got := x.Add(zero); !got.Equal(x) {
			fail(LawAddIdentity, x, zero, got)
		}
		if got := x.Mul(one); !got.Equal(x) {
			fail(LawMulIdentity, x, one, got)
		}
		if got := x.Sub(x); !got.IsZero() {
			fail(LawAddInverse, x, x, got)
		}

		got := x
		P(&got).SetZero()
		if !got.IsZero() {
			fail(LawSetZero, x, zero, got)
		}
		got = x
		P(&got).SetOne()
		if !got.IsOne() {
			fail(LawSetOne, x, one, got)
		}

		for _, y := range samples {
			if !y.Equal(y) {
				continue
			}
			if a, b := x.Add(y), y.Add(x); !same(a, b) {
				fail(LawAddCommutative, x, y, a)
			}
			if a, b := x.Mul(y), y.Mul(x); !same(a, b) {
				fail(LawMulCommutative, x, y, a)
			}
			if y.IsZero() {
				continue
			}
			if got := x.Div(y).Mul(y); !approx(got, x) {
				fail(LawDivMulRoundTrip, x, y, got)
			}
		}
	}
	return vs
}
