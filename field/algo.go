// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// Sum returns x[0] + x[1] + ... in order. The sum of nothing is zero.
func Sum[T Element[T]](xs ...T) T {
	s := Zero[T]()
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Product returns x[0] * x[1] * ... in order. The product of nothing is one.
func Product[T Element[T]](xs ...T) T {
	p := One[T]()
	for _, x := range xs {
		p = p.Mul(x)
	}
	return p
}

// Inverse returns one / x.
func Inverse[T Element[T]](x T) T {
	return One[T]().Div(x)
}

// Pow returns x raised to the integer power n by repeated squaring.
// Pow(x, 0) is one for every x, including zero. A negative n raises
// the inverse of x.
func Pow[T Element[T]](x T, n int) T {
	var u uint
	if n < 0 {
		x = Inverse(x)
		u = uint(-(n + 1)) + 1
	} else {
		u = uint(n)
	}
	r := One[T]()
	for u > 0 {
		if u&1 == 1 {
			r = r.Mul(x)
		}
		u >>= 1
		if u > 0 {
			x = x.Mul(x)
		}
	}
	return r
}

// Horner evaluates the polynomial with coefficients coeffs at x,
// where coeffs[k] is the coefficient of x^k.
func Horner[T Element[T]](coeffs []T, x T) T {
	r := Zero[T]()
	for k := len(coeffs) - 1; k >= 0; k-- {
		r = r.Mul(x).Add(coeffs[k])
	}
	return r
}

// SumInto resets *dst to zero and adds each of xs to it.
func SumInto[T Element[T], P Mutable[T]](dst P, xs ...T) {
	dst.SetZero()
	for _, x := range xs {
		*dst = (*dst).Add(x)
	}
}

// ProductInto resets *dst to one and multiplies it by each of xs.
func ProductInto[T Element[T], P Mutable[T]](dst P, xs ...T) {
	dst.SetOne()
	for _, x := range xs {
		*dst = (*dst).Mul(x)
	}
}
