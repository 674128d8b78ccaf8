// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Scalar is a real number of float type F that satisfies Element.
type Scalar[F constraints.Float] struct {
	v F
}

func NewScalar[F constraints.Float](v F) Scalar[F] {
	return Scalar[F]{v: v}
}

func (s Scalar[F]) Value() F { return s.v }

func (s Scalar[F]) Add(b Scalar[F]) Scalar[F] { return Scalar[F]{s.v + b.v} }
func (s Scalar[F]) Sub(b Scalar[F]) Scalar[F] { return Scalar[F]{s.v - b.v} }
func (s Scalar[F]) Mul(b Scalar[F]) Scalar[F] { return Scalar[F]{s.v * b.v} }
func (s Scalar[F]) Div(b Scalar[F]) Scalar[F] { return Scalar[F]{s.v / b.v} }

func (Scalar[F]) Zero() Scalar[F] { return Scalar[F]{} }
func (Scalar[F]) One() Scalar[F]  { return Scalar[F]{1} }

func (s Scalar[F]) IsZero() bool { return s.v == 0 }
func (s Scalar[F]) IsOne() bool  { return s.v == 1 }

func (s *Scalar[F]) SetZero() { s.v = 0 }
func (s *Scalar[F]) SetOne()  { s.v = 1 }

func (s Scalar[F]) Equal(b Scalar[F]) bool { return s.v == b.v }

// ApproxEqual reports whether s and b are within tol of each other,
// relative to the larger magnitude once it exceeds 1. An infinity is
// only equal to itself.
func (s Scalar[F]) ApproxEqual(b Scalar[F], tol F) bool {
	if s.v == b.v {
		return true
	}
	x, y := float64(s.v), float64(b.v)
	scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	if math.IsInf(scale, 0) {
		return false
	}
	return math.Abs(x-y) <= float64(tol)*scale
}

func (s Scalar[F]) String() string {
	return strconv.FormatFloat(float64(s.v), 'f', -1, reflect.TypeOf(s.v).Bits())
}
