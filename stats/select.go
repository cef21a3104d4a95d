// Copyright 2026 The algorithms Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultTopK is the number of values reported by TopK callers that
// don't ask for a specific count.
const DefaultTopK = 4

// A Source supplies the random pivot choices for NthHighest. IntN
// must return a uniformly distributed int in [0, n). *rand.Rand from
// math/rand/v2 satisfies Source.
type Source interface {
	IntN(n int) int
}

// NthHighest returns the value at position n (counting from 1) of xs
// sorted in descending order. Hence, NthHighest(xs, 1, src) is the
// maximum of xs and NthHighest(xs, len(xs), src) is the minimum.
//
// Values compare as with cmp.Compare, so a floating-point NaN is
// treated as smaller than every other value.
//
// NthHighest implements randomized selection: it repeatedly picks a
// random pivot and narrows the candidates to the values above or
// below it. This takes expected O(len(xs)) time and O(len(xs)²) in
// the worst case. xs is not modified. If src is nil, pivots are
// drawn from the top-level math/rand/v2 generator.
//
// NthHighest returns ErrSampleSize if xs is empty and ErrRank if n is
// not in [1, len(xs)].
func NthHighest[T cmp.Ordered](xs []T, n int, src Source) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrSampleSize
	}
	if n < 1 || n > len(xs) {
		return zero, errors.Wrapf(ErrRank, "rank %d not in [1, %d]", n, len(xs))
	}

	intN := rand.IntN
	if src != nil {
		intN = src.IntN
	}

	// Invariant: 1 <= n <= len(cand), and the answer is the n'th
	// highest of cand.
	cand := xs
	for len(cand) > 1 {
		pivot := cand[intN(len(cand))]
		greater, lesser := partition(cand, pivot)

		// Ranks (above, through] of cand are occupied by
		// copies of the pivot.
		above := len(greater)
		through := len(cand) - len(lesser)
		switch {
		case n <= above:
			cand = greater
		case n <= through:
			return pivot, nil
		default:
			n -= through
			cand = lesser
		}
	}
	return cand[0], nil
}

// partition returns the values of xs strictly greater than pivot and
// strictly less than pivot, in their original order. Values equal to
// pivot are omitted.
func partition[T cmp.Ordered](xs []T, pivot T) (greater, lesser []T) {
	for _, x := range xs {
		switch cmp.Compare(x, pivot) {
		case 1:
			greater = append(greater, x)
		case -1:
			lesser = append(lesser, x)
		}
	}
	return
}

// TopK returns the min(k, len(xs)) highest values of xs in
// descending order. Repeated values appear as many times as they
// occur in xs. Each rank is selected independently with NthHighest
// using src.
//
// TopK returns ErrSampleSize if xs is empty. If k <= 0, it returns an
// empty slice.
func TopK[T cmp.Ordered](xs []T, k int, src Source) ([]T, error) {
	if len(xs) == 0 {
		return nil, ErrSampleSize
	}
	k = max(min(k, len(xs)), 0)

	top := make([]T, 0, k)
	for i := 1; i <= k; i++ {
		x, err := NthHighest(xs, i, src)
		if err != nil {
			return nil, err
		}
		top = append(top, x)
	}
	return top, nil
}
