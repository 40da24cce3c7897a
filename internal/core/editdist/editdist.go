// Package editdist implements minimum-cost transformation distances between
// two rune sequences, with configurable per-operation weights.
package editdist

import (
	"errors"

	"github.com/baditaflorin/go_string_similarity/internal/pool"
)

// ErrLengthMismatch is returned by Hamming when the inputs differ in length.
var ErrLengthMismatch = errors.New("hamming distance requires strings of equal length")

// Costs configures the per-operation weights of the edit-distance recurrence.
// Transpose is only consulted by DamerauDistance.
type Costs struct {
	Insert     float64
	Delete     float64
	Substitute float64
	Transpose  float64
}

// DefaultCosts returns unit costs for every operation.
func DefaultCosts() Costs {
	return Costs{Insert: 1, Delete: 1, Substitute: 1, Transpose: 1}
}

// Validate checks that no weight is negative.
func (c Costs) Validate() error {
	if c.Insert < 0 || c.Delete < 0 || c.Substitute < 0 || c.Transpose < 0 {
		return errors.New("operation costs must be non-negative")
	}
	return nil
}

// rowPool provides reusable DP rows; each call takes a pair and returns them.
var rowPool = pool.NewRowPool(64)

// Distance computes the weighted Levenshtein distance between a and b using
// two rolling rows, so space stays O(min-side) instead of O(m*n).
func Distance(a, b string, costs Costs) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return float64(len(rb)) * costs.Insert
	}
	if len(rb) == 0 {
		return float64(len(ra)) * costs.Delete
	}

	prevPtr := rowPool.Get(len(rb) + 1)
	curPtr := rowPool.Get(len(rb) + 1)
	defer rowPool.Put(prevPtr)
	defer rowPool.Put(curPtr)
	prev, cur := *prevPtr, *curPtr

	for j := 0; j <= len(rb); j++ {
		prev[j] = float64(j) * costs.Insert
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = float64(i) * costs.Delete
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub += costs.Substitute
			}
			cur[j] = min3(prev[j]+costs.Delete, cur[j-1]+costs.Insert, sub)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

// DamerauDistance computes the restricted Damerau-Levenshtein distance: the
// Levenshtein operations plus transposition of two adjacent symbols. Only
// adjacent single transpositions are considered, so the full matrix is kept.
func DamerauDistance(a, b string, costs Costs) float64 {
	ra := []rune(a)
	rb := []rune(b)
	m, n := len(ra), len(rb)

	if m == 0 {
		return float64(n) * costs.Insert
	}
	if n == 0 {
		return float64(m) * costs.Delete
	}

	d := make([][]float64, m+1)
	for i := range d {
		d[i] = make([]float64, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = float64(i) * costs.Delete
	}
	for j := 0; j <= n; j++ {
		d[0][j] = float64(j) * costs.Insert
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			sub := d[i-1][j-1]
			if ra[i-1] != rb[j-1] {
				sub += costs.Substitute
			}
			best := min3(d[i-1][j]+costs.Delete, d[i][j-1]+costs.Insert, sub)
			if i >= 2 && j >= 2 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + costs.Transpose; t < best {
					best = t
				}
			}
			d[i][j] = best
		}
	}

	return d[m][n]
}

// Hamming counts the positions at which the corresponding runes differ.
// It is defined only for inputs of equal rune length.
func Hamming(a, b string) (int, error) {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) {
		return 0, ErrLengthMismatch
	}
	distance := 0
	for i := range ra {
		if ra[i] != rb[i] {
			distance++
		}
	}
	return distance, nil
}

// Similarity converts a raw distance into a normalized similarity using
// 1 - distance/max(lenA, lenB, 1), clamped to [0,1].
func Similarity(distance float64, lenA, lenB int) float64 {
	denom := lenA
	if lenB > denom {
		denom = lenB
	}
	if denom < 1 {
		denom = 1
	}
	s := 1.0 - distance/float64(denom)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
