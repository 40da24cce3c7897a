// Package sequence implements alignment-based similarity over arbitrary
// comparable element sequences, so the same engine serves rune sequences and
// word or syllable sequences alike.
package sequence

// Block describes a maximal contiguous common run found during alignment.
type Block struct {
	AStart int
	BStart int
	Size   int
}

// longestMatch finds the longest contiguous block common to a and b.
// Ties are broken toward the leftmost occurrence in a, then in b, which the
// strict greater-than comparison guarantees with ascending iteration.
func longestMatch[T comparable](a, b []T) Block {
	best := Block{}
	j2len := make(map[int]int, len(b))
	for i := 0; i < len(a); i++ {
		newJ2len := make(map[int]int, len(b))
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > best.Size {
				best = Block{AStart: i - k + 1, BStart: j - k + 1, Size: k}
			}
		}
		j2len = newJ2len
	}
	return best
}

// matchedTotal accumulates the total matched length of the matching-blocks
// decomposition: locate the longest common block, then recurse on the
// unmatched left and right remainders.
func matchedTotal[T comparable](a, b []T) int {
	blk := longestMatch(a, b)
	if blk.Size == 0 {
		return 0
	}
	total := blk.Size
	total += matchedTotal(a[:blk.AStart], b[:blk.BStart])
	total += matchedTotal(a[blk.AStart+blk.Size:], b[blk.BStart+blk.Size:])
	return total
}

// Ratio computes the Ratcliff/Obershelp similarity 2*M/(len(a)+len(b)),
// where M is the total matched length over all matching blocks. Two empty
// sequences are vacuously identical; exactly one empty scores zero.
func Ratio[T comparable](a, b []T) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}
	m := matchedTotal(a, b)
	return 2.0 * float64(m) / float64(la+lb)
}

// StringRatio is Ratio applied to the rune sequences of two strings.
func StringRatio(a, b string) float64 {
	return Ratio([]rune(a), []rune(b))
}

// LCSLength computes the length of the longest common subsequence of a and b.
func LCSLength[T comparable](a, b []T) int {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// LongestCommonSubstring returns the longest contiguous substring common to
// a and b; on ties the leftmost occurrence in a wins.
func LongestCommonSubstring(a, b string) string {
	ra := []rune(a)
	rb := []rune(b)
	blk := longestMatch(ra, rb)
	if blk.Size == 0 {
		return ""
	}
	return string(ra[blk.AStart : blk.AStart+blk.Size])
}

// SmithWaterman computes the maximum local-alignment score between a and b
// under the given match reward, mismatch penalty, and gap penalty. The score
// floor of zero makes the alignment local.
func SmithWaterman(a, b string, match, mismatch, gap float64) float64 {
	ra := []rune(a)
	rb := []rune(b)
	m, n := len(ra), len(rb)
	if m == 0 || n == 0 {
		return 0
	}

	prev := make([]float64, n+1)
	cur := make([]float64, n+1)
	var best float64

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := prev[j-1]
			if ra[i-1] == rb[j-1] {
				diag += match
			} else {
				diag += mismatch
			}
			score := diag
			if up := prev[j] + gap; up > score {
				score = up
			}
			if left := cur[j-1] + gap; left > score {
				score = left
			}
			if score < 0 {
				score = 0
			}
			cur[j] = score
			if score > best {
				best = score
			}
		}
		prev, cur = cur, prev
	}

	return best
}

// Default Smith-Waterman scoring parameters.
const (
	DefaultMatchScore    = 3
	DefaultMismatchScore = -3
	DefaultGapPenalty    = -2
)
