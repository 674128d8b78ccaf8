// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cplx implements a complex number value type built from
// two float64 components.
//
// Arithmetic follows IEEE-754 double precision exactly: NaN and
// infinities are never rejected, they propagate through every
// operation the way they do for plain float64 values. The type
// satisfies field.Element so generic numeric code written against
// an abstract field can be instantiated with it.
package cplx

import (
	"math"

	"neugram.io/cplx/format"
)

// Complex is a complex number. The zero value is 0.
//
// Complex values are compared with == (or Equal) field by field,
// with no tolerance.
type Complex struct {
	re float64
	im float64
}

func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// I returns the imaginary unit.
func I() Complex {
	return Complex{im: 1}
}

func FromComplex128(z complex128) Complex {
	return Complex{re: real(z), im: imag(z)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

func (c Complex) Real() float64 { return c.re }
func (c Complex) Imag() float64 { return c.im }

func (c *Complex) SetReal(v float64) { c.re = v }
func (c *Complex) SetImag(v float64) { c.im = v }

// Set sets c to x.
func (c *Complex) Set(x Complex) {
	*c = x
}

// AbsSq returns re² + im².
func (c Complex) AbsSq() float64 {
	return c.re*c.re + c.im*c.im
}

// Abs returns the magnitude of c, the square root of AbsSq.
// It overflows to +Inf wherever AbsSq does.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.AbsSq())
}

// Arg returns the angle of c in (-π, π]. Arg of 0 is 0.
func (c Complex) Arg() float64 {
	return math.Atan2(c.im, c.re)
}

func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

func (c Complex) Equal(b Complex) bool {
	return c == b
}

// ApproxEqual reports whether c and b are within tol of each other,
// relative to the larger of their magnitudes (or absolutely, below 1).
// Distances are measured with math.Hypot, so large finite values do
// not overflow. A value with an infinite component is only equal to
// itself, and NaN is equal to nothing.
func (c Complex) ApproxEqual(b Complex, tol float64) bool {
	if c == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Hypot(c.re, c.im), math.Hypot(b.re, b.im)))
	if math.IsInf(scale, 0) {
		return false
	}
	return math.Hypot(c.re-b.re, c.im-b.im) <= tol*scale
}

func (c Complex) String() string {
	return format.Complex(c.re, c.im)
}
