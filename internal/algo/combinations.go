package algo

import "github.com/elektrokombinacija/hotel-alloc/internal/core"

// ForEachCombination calls visit once for every k-subset of pool, in
// lexicographic index order. The slice passed to visit is reused between
// calls; copy it to keep it.
func ForEachCombination(pool []*core.Room, k int, visit func(combo []*core.Room)) {
	if k <= 0 || k > len(pool) {
		return
	}
	combo := make([]*core.Room, 0, k)

	var backtrack func(start int)
	backtrack = func(start int) {
		if len(combo) == k {
			visit(combo)
			return
		}
		// Stop early once too few rooms remain to fill the combination.
		for i := start; i <= len(pool)-(k-len(combo)); i++ {
			combo = append(combo, pool[i])
			backtrack(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	backtrack(0)
}

// CountCombinations returns C(n, k).
func CountCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return c
}
