// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package prefix

import "sort"

// symCount pairs a symbol with its count.
type symCount struct {
	sym   Symbol
	count uint64
}

// InPlaceLengths computes optimal code lengths without building a tree,
// following In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
func InPlaceLengths(f *Frequencies) (l Lengths, err error) {
	counts := make([]symCount, 0, NumSymbols)
	for sym, v := range f {
		if v != 0 {
			counts = append(counts, symCount{sym: Symbol(sym), count: v})
		}
	}
	if len(counts) == 0 {
		return l, ErrEmpty
	}
	// decreasing counts, ties by symbol
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	w := make([]uint64, len(counts))
	for i, v := range counts {
		w[i] = v.count
	}
	codeLens(w)
	for i, v := range w {
		l[counts[i].sym] = uint8(v)
	}
	return l, nil
}

// codeLens replaces the non-increasing weights w by their code lengths and
// returns the longest one.
func codeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth depth
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[len(w)-1]
}
