// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package prefix

import (
	"fmt"
	"sort"
)

// Lengths holds the code length of every symbol, 0 for absent symbols.
type Lengths [NumSymbols]uint8

// Max returns the longest code length.
func (l *Lengths) Max() (longest int) {
	for _, v := range l {
		if int(v) > longest {
			longest = int(v)
		}
	}
	return longest
}

// Kraft returns sum(2^-length) scaled by 2^MaxCodeLen. A complete code
// sums to exactly 1<<MaxCodeLen. Lengths above MaxCodeLen are ignored.
func (l *Lengths) Kraft() (total uint64) {
	for _, v := range l {
		if v != 0 && v <= MaxCodeLen {
			total += 1 << (MaxCodeLen - v)
		}
	}
	return total
}

// Validate reports whether l can be turned into a prefix code whose codes
// are at most maxLen bits long.
func (l *Lengths) Validate(maxLen int) error {
	for sym, v := range l {
		if int(v) > maxLen {
			return fmt.Errorf("symbol %d: code length %d exceeds %d", sym, v, maxLen)
		}
	}
	if l.Kraft() > 1<<MaxCodeLen {
		return fmt.Errorf("code lengths are over-subscribed")
	}
	return nil
}

// Limit rewrites l so that no code is longer than maxLen, keeping the
// shortest codes on the most frequent symbols. It reports whether any
// length changed.
func (l *Lengths) Limit(f *Frequencies, maxLen int) bool {
	longest := l.Max()
	if longest <= maxLen {
		return false
	}
	lenCounts := make([]uint64, longest+1)
	syms := make([]Symbol, 0, NumSymbols)
	for sym, v := range l {
		if v != 0 {
			lenCounts[v]++
			syms = append(syms, Symbol(sym))
		}
	}
	enforceMaxLen(lenCounts, maxLen)

	sort.SliceStable(syms, func(i, j int) bool {
		return f[syms[i]] > f[syms[j]]
	})
	idx := 0
	for length := 1; length <= maxLen; length++ {
		for j := uint64(0); j < lenCounts[length]; j++ {
			l[syms[idx]] = uint8(length)
			idx++
		}
	}
	return true
}

func enforceMaxLen(lenCounts []uint64, maxLen int) {
	// move all oversize length to the maxLen
	for i := maxLen + 1; i < len(lenCounts); i++ {
		lenCounts[maxLen] += lenCounts[i]
		lenCounts[i] = 0
	}

	// Kraft-McMillan inequality, scaled by 2^maxLen:
	// sum(count[i] * 2^(maxLen-i)) must come back to 2^maxLen.
	// Every step below lowers the sum by exactly one.
	total := uint64(0)
	for i := 1; i <= maxLen; i++ {
		total += lenCounts[i] << (maxLen - i)
	}
	for total != 1<<maxLen {
		// move longest nodes
		lenCounts[maxLen]--
		for i := maxLen - 1; i > 0; i-- {
			if lenCounts[i] != 0 {
				lenCounts[i]--
				lenCounts[i+1] += 2
				break
			}
		}
		total--
	}
}
