// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cplx

// Zero returns the additive identity, 0.
func Zero() Complex {
	return Complex{}
}

// One returns the multiplicative identity, 1.
func One() Complex {
	return Complex{re: 1}
}

// Zero and One as methods let generic code that only holds a type
// parameter produce identities. The receiver is ignored.

func (Complex) Zero() Complex { return Zero() }
func (Complex) One() Complex  { return One() }

func (c Complex) IsZero() bool {
	return c.re == 0 && c.im == 0
}

func (c Complex) IsOne() bool {
	return c == One()
}

func (c *Complex) SetZero() {
	c.re = 0
	c.im = 0
}

func (c *Complex) SetOne() {
	c.re = 1
	c.im = 0
}
