package suffixarray

// CharOrd returns the positions of s sorted stably by their character value
// s[i], i.e. a stable counting sort of the identity permutation keyed on
// s[i]. It is the initial ordination step the doubling kernel refines.
func CharOrd(s []int) []int {
	freq := make(map[int]int, len(s))
	for _, c := range s {
		freq[c]++
	}
	keys := sortedKeys(freq)

	ptr := make(map[int]int, len(keys))
	cursor := 0
	for _, k := range keys {
		ptr[k] = cursor
		cursor += freq[k]
	}

	ord := make([]int, len(s))
	for i, c := range s {
		ord[ptr[c]] = i
		ptr[c]++
	}
	return ord
}

// CharRank returns, for each position i, the dense rank of s[i] among the
// distinct values observed in s, in the range [0, sigma). This compresses
// an arbitrary nonnegative-integer alphabet down to consecutive integers,
// which the DC3 kernel requires so its radix-sort bucket counts stay O(N).
func CharRank(s []int) []int {
	seen := make(map[int]struct{}, len(s))
	for _, c := range s {
		seen[c] = struct{}{}
	}
	freq := make(map[int]int, len(seen))
	for k := range seen {
		freq[k] = 0
	}
	keys := sortedKeys(freq)

	rankOf := make(map[int]int, len(keys))
	for i, k := range keys {
		rankOf[k] = i
	}

	rank := make([]int, len(s))
	for i, c := range s {
		rank[i] = rankOf[c]
	}
	return rank
}

// sortedKeys returns the keys of m in ascending order. Character alphabets
// in this package are always small relative to N, so a simple insertion
// into a sorted slice is fine; the counting-sort helpers above are the
// performance-sensitive code, not this bookkeeping.
func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
