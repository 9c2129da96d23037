package suffixarray

import "sort"

// naiveLCP returns the length of the common prefix of the suffixes of s
// starting at i and at j. It relies on s ending in a sentinel strictly
// smaller than every other value, so the scan is guaranteed to terminate:
// it cannot run past the end of s on two suffixes that are otherwise equal.
func naiveLCP(s []int, i, j int) int {
	l := 0
	for s[i+l] == s[j+l] {
		l++
	}
	return l
}

// NaiveSA computes the suffix array of s by direct pairwise suffix
// comparison and a general-purpose sort: O(n^2 log n) worst case. It serves
// as the correctness oracle the other two kernels are checked against.
//
// s must end with a unique sentinel value strictly smaller than every other
// value in s (see package doc); NaiveSA does not append one itself.
func NaiveSA(s []int) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		i, j := sa[a], sa[b]
		if i == j {
			return false
		}
		l := naiveLCP(s, i, j)
		return s[i+l] < s[j+l]
	})
	return sa
}
