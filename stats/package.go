// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes order statistics and simple descriptive
// statistics of samples.
package stats // import "github.com/nlagrow/algorithms/stats"

import "math"

var nan = math.NaN()
