// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package prefix builds optimal prefix codes: symbol frequencies, the
// Huffman tree, code lengths and their canonical bit patterns.
package prefix

// Symbol is one letter of the code alphabet: a byte value or EOF.
type Symbol uint16

const (
	// NumSymbols is the alphabet size, every byte value plus EOF.
	NumSymbols = 256 + 1
	// EOF terminates every encoded message. It can never be a data byte.
	EOF Symbol = 256
	// MaxCodeLen is the longest code a canonical code value can hold.
	MaxCodeLen = 32
	// MinCodeLen is the smallest length limit that still fits NumSymbols codes.
	MinCodeLen = 9
)

// Frequencies counts occurrences of every symbol.
type Frequencies [NumSymbols]uint64

// Count returns the frequencies of data with EOF counted once.
func Count(data []byte) *Frequencies {
	f := &Frequencies{}
	f.Add(data)
	f[EOF] = 1
	return f
}

// Add counts the bytes of data.
func (f *Frequencies) Add(data []byte) {
	for j := 0; j < len(data); j++ {
		f[data[j]]++
	}
}

// Distinct returns the number of symbols with a nonzero count.
func (f *Frequencies) Distinct() (num int) {
	for _, v := range f {
		if v != 0 {
			num++
		}
	}
	return num
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() (total uint64) {
	for _, v := range f {
		total += v
	}
	return total
}
