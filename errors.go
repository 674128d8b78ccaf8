// Copyright 2018 The Neugram Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cplx

import "errors"

var ErrDivisionByZero = errors.New("cplx: division by zero")
