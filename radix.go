package suffixarray

// Tuple is a fixed-width, nonnegative-integer key compared column by column,
// most significant column first, but sorted least-significant-column first
// by RadixSort (see RadixSort's doc for why LSD order matters here).
type Tuple []int

// RadixSort stably sorts v by lexicographic order over its columns and
// returns the resulting permutation ORD, such that v[ORD[0]] <= v[ORD[1]]
// <= ... <= v[ORD[len(v)-1]].
//
// All tuples in v must have the same length K. Sorting proceeds least
// significant column first (LSD radix sort); each pass is a stable counting
// sort, which is what makes the composition of K stable passes correct.
func RadixSort(v []Tuple) []int {
	ord := make([]int, len(v))
	for i := range ord {
		ord[i] = i
	}
	if len(v) == 0 {
		return ord
	}
	k := len(v[0])
	newOrd := make([]int, len(v))
	var buckets []int
	for c := k - 1; c >= 0; c-- {
		maxX := 0
		for _, x := range v {
			if x[c] > maxX {
				maxX = x[c]
			}
		}
		if cap(buckets) < maxX+1 {
			buckets = make([]int, maxX+1)
		} else {
			buckets = buckets[:maxX+1]
			clear(buckets)
		}
		for _, x := range v {
			buckets[x[c]]++
		}
		prefSum := 0
		for j := range buckets {
			buckets[j], prefSum = prefSum, prefSum+buckets[j]
		}
		for _, i := range ord {
			bIdx := v[i][c]
			newOrd[buckets[bIdx]] = i
			buckets[bIdx]++
		}
		ord, newOrd = newOrd, ord
	}
	return ord
}

// SparseRank assigns each position its rank under ord: equal tuples share a
// rank, and on the first tuple that differs from its predecessor the rank
// jumps to the tuple's own index in ord (rather than incrementing by one).
// The resulting values are bounded by len(ord) but not densely packed.
func SparseRank(v []Tuple, ord []int) []int {
	rank := make([]int, len(ord))
	if len(ord) == 0 {
		return rank
	}
	rank[ord[0]] = 0
	r := 0
	for i := 1; i < len(ord); i++ {
		if !tupleEqual(v[ord[i]], v[ord[i-1]]) {
			r = i
		}
		rank[ord[i]] = r
	}
	return rank
}

// DenseRank assigns each position its rank under ord: equal tuples share a
// rank, and on the first tuple that differs from its predecessor the rank
// increments by one. The resulting alphabet is [0, numDistinct) where
// numDistinct <= len(ord).
func DenseRank(v []Tuple, ord []int) []int {
	rank := make([]int, len(ord))
	if len(ord) == 0 {
		return rank
	}
	rank[ord[0]] = 0
	r := 0
	for i := 1; i < len(ord); i++ {
		if !tupleEqual(v[ord[i]], v[ord[i-1]]) {
			r++
		}
		rank[ord[i]] = r
	}
	return rank
}

func tupleEqual(a, b Tuple) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
