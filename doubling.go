package suffixarray

// cyclicPrev returns (i - step) mod n, computed without a negative
// intermediate so it works for unsigned-flavored reasoning about positions.
func cyclicPrev(i, step, n int) int {
	if step > i {
		return i + n - step
	}
	return i - step
}

// DoublingSA computes the suffix array of s by prefix doubling: at each
// round it refines a rank that already distinguishes the first `stride`
// characters of every rotation into one that distinguishes the first
// 2*stride, until stride reaches len(s) and every rank is unique. O(n log n).
//
// The algorithm sorts cyclic rotations of s, not suffixes; s must end with a
// unique sentinel value strictly smaller than every other value so that
// rotation order and suffix order coincide (see package doc). DoublingSA
// does not append one itself.
//
// Four arrays of length n are allocated up front (ord, rank, rankPtr, and a
// reusable scratch buffer) and reused for every round; nothing else is
// allocated once the loop starts.
func DoublingSA(s []int) []int {
	n := len(s)
	ord := CharOrd(s)
	rank := CharRank(s)
	rankPtr := make([]int, n)
	temp := make([]int, n)

	for stride := 1; stride < n; stride *= 2 {
		prevStride := stride / 2
		newRank := temp

		r := 0
		rankPtr[0] = 0
		newRank[ord[0]] = 0
		for i := 1; i < n; i++ {
			cur, prev := ord[i], ord[i-1]
			if rank[cur] != rank[prev] || rank[(cur+prevStride)%n] != rank[(prev+prevStride)%n] {
				r++
				rankPtr[r] = i
			}
			newRank[ord[i]] = r
		}
		temp, rank = rank, newRank

		newOrd := temp
		for _, i := range ord {
			startI := cyclicPrev(i, stride, n)
			p := rank[startI]
			newOrd[rankPtr[p]] = startI
			rankPtr[p]++
		}
		temp, ord = ord, newOrd
	}
	return ord
}
