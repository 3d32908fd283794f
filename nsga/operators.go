// Package nsga - genetic operators on the route interior.
//
// All operators act on the interior permutation (route without its leading
// and trailing hub). OX preserves the permutation property when both parents
// are valid permutations; mutation may not, so repair runs after every
// offspring is assembled.
package nsga

import "math/rand"

// tournament picks two random individuals and returns the index of the
// winner: lower rank, ties broken by larger crowding distance.
func tournament(ranks []int, crowding []float64, rng *rand.Rand) int {
	var (
		a = rng.Intn(len(ranks))
		b = rng.Intn(len(ranks))
	)
	if ranks[a] < ranks[b] {
		return a
	}
	if ranks[b] < ranks[a] {
		return b
	}
	if crowding[a] >= crowding[b] {
		return a
	}

	return b
}

// orderCrossover performs OX: the child inherits p1[c1..c2] in place and the
// remaining positions, wrapping from c2+1, take p2's items in order, skipping
// the already-copied ones. Interiors of length < 2 are cloned.
func orderCrossover(p1, p2 []int, rng *rand.Rand) []int {
	m := len(p1)
	child := make([]int, m)
	if m < 2 {
		copy(child, p1)

		return child
	}

	var (
		c1 = rng.Intn(m)
		c2 = rng.Intn(m)
	)
	if c1 > c2 {
		c1, c2 = c2, c1
	}

	var (
		taken = make(map[int]bool, c2-c1+1)
		i     int
	)
	for i = c1; i <= c2; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	// Fill the rest from p2, wrapping from c2+1 on both sides.
	var (
		pos = (c2 + 1) % m
		src = (c2 + 1) % m
	)
	for i = 0; i < m; i++ {
		v := p2[src]
		src = (src + 1) % m
		if taken[v] {
			continue
		}
		child[pos] = v
		pos = (pos + 1) % m
	}

	return child
}

// Mutation op selector values.
const (
	mutSwap = iota
	mutReverse
	mutReinsert
	mutOps
)

// mutate applies one of three interior perturbations chosen uniformly:
// position swap, segment reversal, or remove-and-reinsert.
func mutate(interior []int, rng *rand.Rand) {
	m := len(interior)
	if m < 2 {
		return
	}

	switch rng.Intn(mutOps) {
	case mutSwap:
		var (
			i = rng.Intn(m)
			j = rng.Intn(m)
		)
		interior[i], interior[j] = interior[j], interior[i]

	case mutReverse:
		var (
			i = rng.Intn(m)
			j = rng.Intn(m)
		)
		if i > j {
			i, j = j, i
		}
		for i < j {
			interior[i], interior[j] = interior[j], interior[i]
			i++
			j--
		}

	case mutReinsert:
		var (
			from = rng.Intn(m)
			to   = rng.Intn(m)
			v    = interior[from]
		)
		rest := append(interior[:from:from], interior[from+1:]...)
		if to > len(rest) {
			to = len(rest)
		}
		tmp := make([]int, 0, m)
		tmp = append(tmp, rest[:to]...)
		tmp = append(tmp, v)
		tmp = append(tmp, rest[to:]...)
		copy(interior, tmp)
	}
}

// repair rewrites interior into a valid permutation of {1..n−1} of length
// n−1: duplicates and out-of-range values are replaced in place by the
// missing ids in ascending order, still-missing ids are appended, and the
// result is truncated to length n−1.
func repair(interior []int, n int) []int {
	var (
		seen = make([]bool, n)
		out  = make([]int, 0, n-1)
		v    int
		i    int
	)

	// First pass: keep first occurrences of in-range ids, mark holes with 0
	// (0 never belongs to the interior).
	for i = 0; i < len(interior); i++ {
		v = interior[i]
		if v >= 1 && v < n && !seen[v] {
			seen[v] = true
			out = append(out, v)
		} else {
			out = append(out, 0)
		}
	}

	// Missing ids in ascending order.
	missing := make([]int, 0, n-1)
	for v = 1; v < n; v++ {
		if !seen[v] {
			missing = append(missing, v)
		}
	}

	// Second pass: fill holes in place with missing ids while they last.
	next := 0
	for i = 0; i < len(out); i++ {
		if out[i] == 0 && next < len(missing) {
			out[i] = missing[next]
			next++
		}
	}

	// Compact surviving holes (inputs longer than n−1 with repeats), append
	// still-missing ids, truncate. The result then holds each of {1..n−1}
	// exactly once.
	compact := out[:0]
	for i = 0; i < len(out); i++ {
		if out[i] != 0 {
			compact = append(compact, out[i])
		}
	}
	for ; next < len(missing); next++ {
		compact = append(compact, missing[next])
	}
	if len(compact) > n-1 {
		compact = compact[:n-1]
	}

	return compact
}
