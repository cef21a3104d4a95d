// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	return scalar.EqualWithinAbs(expect, got, 0.00001)
}

// naneq is like == but also treats NaN as equal to itself.
func naneq(a, b float64) bool {
	return a == b || math.IsNaN(a) && math.IsNaN(b)
}
