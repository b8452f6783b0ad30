package matching

// Distance computes the Levenshtein edit distance between two strings,
// counted in runes so Arabic input is measured per letter, not per byte.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Closest returns the candidate with the smallest edit distance to input,
// provided that distance is within maxDistance. Ties break to the
// lexicographically first candidate so results are stable across runs.
func Closest(input string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDist := maxDistance + 1

	for _, candidate := range candidates {
		d := Distance(input, candidate)
		if d < bestDist || (d == bestDist && best != "" && candidate < best) {
			best = candidate
			bestDist = d
		}
	}

	if bestDist > maxDistance {
		return "", false
	}
	return best, true
}

// MaxDistanceFor scales the correction threshold to token length; short
// tokens get a tighter bound to avoid false positives on 2-3 letter input.
func MaxDistanceFor(token string) int {
	switch n := len([]rune(token)); {
	case n <= 3:
		return 1
	case n == 4:
		return 2
	default:
		return 3
	}
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
