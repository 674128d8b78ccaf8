// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cplx

func (c Complex) Add(b Complex) Complex {
	return Complex{re: c.re + b.re, im: c.im + b.im}
}

func (c Complex) Sub(b Complex) Complex {
	return Complex{re: c.re - b.re, im: c.im - b.im}
}

func (c Complex) Mul(b Complex) Complex {
	return Complex{
		re: c.re*b.re - c.im*b.im,
		im: c.re*b.im + c.im*b.re,
	}
}

// Div returns c / b.
//
// Dividing by zero is not an error: the components become
// infinities or NaN as float64 division dictates. Use Quo to
// detect a zero divisor instead.
func (c Complex) Div(b Complex) Complex {
	d := b.AbsSq()
	return Complex{
		re: (c.re*b.re + c.im*b.im) / d,
		im: (c.im*b.re - c.re*b.im) / d,
	}
}

// Quo returns c / b, or ErrDivisionByZero if b.AbsSq() is exactly 0.
//
// A divisor whose squared magnitude underflows to 0 is reported as
// zero even though b itself is not.
func (c Complex) Quo(b Complex) (Complex, error) {
	if b.AbsSq() == 0 {
		return Complex{}, ErrDivisionByZero
	}
	return c.Div(b), nil
}

func (c Complex) Neg() Complex {
	return Complex{re: -c.re, im: -c.im}
}
