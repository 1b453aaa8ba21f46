package wordlist

// boundedLevenshtein returns the edit distance between a and b, or
// maxDist+1 as soon as the distance is known to exceed maxDist.
func boundedLevenshtein(a, b []rune, maxDist int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > maxDist {
		return maxDist + 1
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		rowMin := curr[0]
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min(prev[i-1], prev[i], curr[i-1])
			}
			rowMin = min(rowMin, curr[i])
		}
		if rowMin > maxDist {
			return maxDist + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}
