package editdist

// Jaro computes the Jaro similarity between a and b, a value in [0,1] built
// from the number of matching runes within a sliding window and the number
// of transpositions among them.
func Jaro(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}

	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	matches := 0

	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > lb {
			hi = lb
		}
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	// Count transpositions between the matched subsequences.
	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2.0
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3.0
}

// DefaultWinklerScaling is the standard Winkler prefix scaling factor.
const DefaultWinklerScaling = 0.1

// maxWinklerPrefix bounds the common prefix rewarded by Jaro-Winkler.
const maxWinklerPrefix = 4

// JaroWinkler computes the Jaro-Winkler similarity: the Jaro similarity
// boosted in proportion to the length of the common prefix (at most 4
// runes) and the scaling factor p.
func JaroWinkler(a, b string, p float64) float64 {
	j := Jaro(a, b)

	ra := []rune(a)
	rb := []rune(b)
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < maxWinklerPrefix {
		if ra[prefix] != rb[prefix] {
			break
		}
		prefix++
	}

	return j + float64(prefix)*p*(1.0-j)
}
