// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders complex values as text.
//
// A value is printed in one of three shapes, chosen in order:
// the real part alone when the imaginary part is zero, the
// imaginary part alone when the real part is zero, and
// "<re> + <im>i" otherwise.
package format

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Parts is implemented by any value with real and imaginary components.
type Parts interface {
	Real() float64
	Imag() float64
}

// Options controls how a value is rendered. The zero Options is
// the default rendering.
type Options struct {
	// Marker is written after the imaginary part. Empty means "i".
	Marker string

	// SignedImag prints "3 - 4i" rather than "3 + -4i" when the
	// real part is nonzero and the imaginary part is negative.
	SignedImag bool

	// Digits is the number of digits after the decimal point.
	// Zero or a negative value selects the fewest digits that
	// represent the value exactly.
	Digits int
}

// Complex renders re and im with the default options.
func Complex(re, im float64) string {
	return Options{}.Complex(re, im)
}

// Value renders v with the default options.
func Value(v Parts) string {
	return Options{}.Complex(v.Real(), v.Imag())
}

func (o Options) Value(v Parts) string {
	return o.Complex(v.Real(), v.Imag())
}

func (o Options) Complex(re, im float64) string {
	buf := new(bytes.Buffer)
	o.Write(buf, re, im)
	return buf.String()
}

func (o Options) Write(buf *bytes.Buffer, re, im float64) {
	p := &printer{buf: buf, opts: o}
	p.complex(re, im)
}

type printer struct {
	buf  *bytes.Buffer
	opts Options
}

func (p *printer) complex(re, im float64) {
	switch {
	case im == 0:
		p.float(re)
	case re == 0:
		p.float(im)
		p.marker()
	default:
		p.float(re)
		if p.opts.SignedImag && math.Signbit(im) && !math.IsNaN(im) {
			p.buf.WriteString(" - ")
			p.buf.WriteString(strings.TrimPrefix(p.fmt(math.Abs(im)), "+"))
		} else {
			p.buf.WriteString(" + ")
			p.float(im)
		}
		p.marker()
	}
}

func (p *printer) float(v float64) {
	p.buf.WriteString(p.fmt(v))
}

func (p *printer) fmt(v float64) string {
	prec := p.opts.Digits
	if prec <= 0 {
		prec = -1
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func (p *printer) marker() {
	if p.opts.Marker == "" {
		p.buf.WriteByte('i')
		return
	}
	p.buf.WriteString(p.opts.Marker)
}
