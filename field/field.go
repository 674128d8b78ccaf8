// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field describes the operations a number type must provide
// to be used by generic numeric code, and implements a few algorithms
// written once against that description.
//
// An element type provides the four field operators as methods and
// the additive and multiplicative identities. Because a generic
// function only holds a type parameter, identities are obtained
// through methods on the zero value of the type:
//
//	var x T
//	zero, one := x.Zero(), x.One()
//
// The Zero and One functions of this package do exactly that.
//
// Both *cplx.Complex and *Scalar[F] satisfy Mutable, so the same
// algorithm runs over complex and real numbers.
package field

// Element is a member of a field of type T.
//
// Equal is exact equality. Implementations built on floating point
// are not expected to satisfy the field laws exactly for every
// operation; CheckLaws takes an approximate comparison for the
// laws that need one.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T

	Zero() T
	One() T
	IsZero() bool
	IsOne() bool

	Equal(T) bool
}

// Mutable is a pointer to an element that can be reset in place
// to one of the identities.
type Mutable[T any] interface {
	*T
	SetZero()
	SetOne()
}

// Zero returns the additive identity of T.
func Zero[T Element[T]]() T {
	var x T
	return x.Zero()
}

// One returns the multiplicative identity of T.
func One[T Element[T]]() T {
	var x T
	return x.One()
}
