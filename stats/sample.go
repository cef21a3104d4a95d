// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly repeated values.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Summary describes the center of a sample.
type Summary struct {
	// N is the sample size.
	N int

	Mean   float64
	Median float64

	// Mode is the most frequent value. If several values are
	// equally frequent, Mode is the smallest of them.
	Mode float64
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// sorted returns s if it is already sorted, or a sorted copy.
func (s Sample) sorted() Sample {
	if s.Sorted {
		return s
	}
	return *s.Copy().Sort()
}

// Sum returns the sum of the sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Median returns the middle value of the sample. If the sample has
// an even number of values, this is the mean of the two middle ones.
//
// If the sample isn't sorted, this sorts a copy.
func (s Sample) Median() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := s.sorted().Xs
	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}

// Mode returns the most frequent value of the sample. Ties go to the
// smallest value, where NaN is smaller than every number.
//
// If the sample isn't sorted, this sorts a copy.
func (s Sample) Mode() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	xs := s.sorted().Xs
	mode, best := xs[0], 0
	for i := 0; i < len(xs); {
		i1, v1 := i, xs[i]
		// NaNs sort first and count as one value.
		for i++; i < len(xs) && (xs[i] == v1 || math.IsNaN(xs[i]) && math.IsNaN(v1)); i++ {
		}
		if run := i - i1; run > best {
			mode, best = v1, run
		}
	}
	return mode
}

// NthHighest returns the n'th highest value of the sample, counting
// from 1. See NthHighest.
//
// If the sample is sorted, this indexes Xs directly.
func (s Sample) NthHighest(n int, src Source) (float64, error) {
	if !s.Sorted || n < 1 || n > len(s.Xs) {
		return NthHighest(s.Xs, n, src)
	}
	return s.Xs[len(s.Xs)-n], nil
}

// Top returns the min(k, len(s.Xs)) highest values of the sample in
// descending order. See TopK.
func (s Sample) Top(k int, src Source) ([]float64, error) {
	if !s.Sorted {
		return TopK(s.Xs, k, src)
	}
	if len(s.Xs) == 0 {
		return nil, ErrSampleSize
	}
	k = max(min(k, len(s.Xs)), 0)
	top := make([]float64, k)
	for i := range top {
		top[i] = s.Xs[len(s.Xs)-1-i]
	}
	return top, nil
}

// Describe returns the size, mean, median, and mode of the sample.
// It returns ErrSampleSize if the sample is empty.
func (s Sample) Describe() (Summary, error) {
	if len(s.Xs) == 0 {
		return Summary{}, ErrSampleSize
	}
	s = s.sorted()
	return Summary{
		N:      len(s.Xs),
		Mean:   s.Mean(),
		Median: s.Median(),
		Mode:   s.Mode(),
	}, nil
}
