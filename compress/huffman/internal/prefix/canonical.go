// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package prefix

import "sort"

// Code is the canonical code of one symbol. Bits holds the code value in
// its low Len bits, first bit on the wire in the most significant position.
type Code struct {
	Symbol Symbol
	Len    uint8
	Bits   uint32
}

// Sorted returns the symbols present in l ordered by (length, symbol).
func Sorted(l *Lengths) []Code {
	codes := make([]Code, 0, NumSymbols)
	for sym, v := range l {
		if v != 0 {
			codes = append(codes, Code{Symbol: Symbol(sym), Len: v})
		}
	}
	// symbols are already in increasing order
	sort.SliceStable(codes, func(i, j int) bool {
		return codes[i].Len < codes[j].Len
	})
	return codes
}

// Assign generates the canonical codes of l. Codes of one length are
// consecutive integers; moving to a longer length shifts the running
// code left by the length difference. The result only depends on l.
func Assign(l *Lengths) []Code {
	codes := Sorted(l)
	code := uint32(0)
	prevLen := uint8(0)
	for i := range codes {
		if codes[i].Len > prevLen {
			code <<= codes[i].Len - prevLen
			prevLen = codes[i].Len
		}
		codes[i].Bits = code
		code++
	}
	return codes
}
