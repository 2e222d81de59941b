package dictionary

import "sort"

// Less orders a before b when a is more frequent, or equally frequent and
// lexicographically smaller.
func Less(a, b WordFrequency) bool {
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return a.Word < b.Word
}

// Rank sorts candidates in place with Less and returns at most k of them.
// A k <= 0 keeps every candidate.
func Rank(candidates []WordFrequency, k int) []WordFrequency {
	if len(candidates) == 0 {
		return []WordFrequency{}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return Less(candidates[i], candidates[j])
	})
	if k > 0 && len(candidates) > k {
		top := make([]WordFrequency, k)
		copy(top, candidates)
		return top
	}
	return candidates
}
