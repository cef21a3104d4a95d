// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/pkg/errors"

var (
	// ErrSampleSize is returned when an operation is given an
	// empty sample.
	ErrSampleSize = errors.New("sample is empty")

	// ErrRank is returned when a requested rank is outside
	// [1, sample size].
	ErrRank = errors.New("rank out of range")
)
