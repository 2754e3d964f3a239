package match

// SimilarityThreshold is the minimum normalized similarity for one key
// name to count as a likely typo of another.
const SimilarityThreshold = 0.6

// Suggestion pairs an unexpected key with the missing key it most
// resembles.
type Suggestion struct {
	Unexpected string
	Missing    string
}

// PairTypos matches each unexpected key against every missing key and
// returns the pairs that look like typos: similarity strictly above
// SimilarityThreshold, best missing candidate per unexpected key.
// Pairs come back in unexpected-key order.
func PairTypos(missing, unexpected []string) []Suggestion {
	var pairs []Suggestion

	for _, u := range unexpected {
		best := ""
		bestScore := SimilarityThreshold

		for _, m := range missing {
			if score := Similarity(u, m); score > bestScore {
				best = m
				bestScore = score
			}
		}

		if best != "" {
			pairs = append(pairs, Suggestion{Unexpected: u, Missing: best})
		}
	}

	return pairs
}
