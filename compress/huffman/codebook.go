// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fastgo/codec/compress/huffman/internal/prefix"
)

// Symbol is a code alphabet letter: a byte value or EOF.
type Symbol = prefix.Symbol

const (
	// EOF is the end-of-stream symbol appended to every message.
	EOF = prefix.EOF
	// NumSymbols is the alphabet size, 256 byte values plus EOF.
	NumSymbols = prefix.NumSymbols
	// MaxCodeLength is the longest supported code.
	MaxCodeLength = prefix.MaxCodeLen
	// MinCodeLength is the smallest accepted code length limit.
	MinCodeLength = prefix.MinCodeLen
)

// Entry is the code of one symbol.
type Entry struct {
	Symbol Symbol
	Len    int
	Bits   uint32 // code value in the low Len bits
}

// String returns the code as a string of '0' and '1'.
func (e Entry) String() string {
	var sb strings.Builder
	sb.Grow(e.Len)
	for i := e.Len - 1; i >= 0; i-- {
		if e.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Codebook maps symbols to canonical codes. It is immutable and safe
// for concurrent use.
type Codebook struct {
	lengths prefix.Lengths
	codes   [NumSymbols]uint32
	maxLen  uint8

	// canonical decoding: codes of length n are first[n]...first[n]+count[n]-1
	// and belong to order[offset[n]:offset[n]+count[n]].
	order  []Symbol
	count  [MaxCodeLength + 1]uint32
	first  [MaxCodeLength + 1]uint32
	offset [MaxCodeLength + 1]uint32
}

func newCodebook(l prefix.Lengths) *Codebook {
	cb := &Codebook{lengths: l}
	codes := prefix.Assign(&l)
	cb.order = make([]Symbol, len(codes))
	for i, c := range codes {
		cb.codes[c.Symbol] = c.Bits
		cb.order[i] = c.Symbol
		if cb.count[c.Len] == 0 {
			cb.first[c.Len] = c.Bits
			cb.offset[c.Len] = uint32(i)
		}
		cb.count[c.Len]++
		if c.Len > cb.maxLen {
			cb.maxLen = c.Len
		}
	}
	return cb
}

// NewCodebook builds the canonical codebook of the given code lengths, one
// per symbol in symbol order, EOF last. Absent symbols have length 0.
func NewCodebook(lengths []int) (*Codebook, error) {
	if len(lengths) != NumSymbols {
		return nil, fmt.Errorf("huffman: got %d code lengths, want %d", len(lengths), NumSymbols)
	}
	var l prefix.Lengths
	for sym, v := range lengths {
		if v < 0 || v > MaxCodeLength {
			return nil, fmt.Errorf("huffman: symbol %d: invalid code length %d", sym, v)
		}
		l[sym] = uint8(v)
	}
	if err := checkLengths(&l); err != nil {
		return nil, fmt.Errorf("huffman: %w", err)
	}
	return newCodebook(l), nil
}

func checkLengths(l *prefix.Lengths) error {
	if l[EOF] == 0 {
		return errors.New("end-of-stream symbol has no code")
	}
	return l.Validate(MaxCodeLength)
}

// BuildCodebook builds the codebook of data. EOF is always included.
func BuildCodebook(data []byte, opts ...Option) (*Codebook, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return buildCodebook(data, &o)
}

func buildCodebook(data []byte, o *options) (*Codebook, error) {
	f := prefix.Count(data)
	var (
		l   prefix.Lengths
		err error
	)
	switch o.strategy {
	case InPlaceStrategy:
		l, err = prefix.InPlaceLengths(f)
	default:
		var t *prefix.Tree
		t, err = prefix.Build(f)
		if err == nil {
			l = t.Lengths()
		}
	}
	if errors.Is(err, prefix.ErrEmpty) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}
	if longest := l.Max(); l.Limit(f, o.maxCodeLen) {
		o.log.WithFields(logrus.Fields{
			"optimal": longest,
			"limit":   o.maxCodeLen,
		}).Warn("huffman: code lengths flattened to limit")
	}
	cb := newCodebook(l)
	o.log.WithFields(logrus.Fields{
		"symbols":  len(cb.order),
		"maxLen":   cb.maxLen,
		"strategy": o.strategy,
	}).Debug("huffman: codebook built")
	return cb, nil
}

// Lookup returns the code of sym.
func (cb *Codebook) Lookup(sym Symbol) (Entry, bool) {
	if int(sym) >= NumSymbols || cb.lengths[sym] == 0 {
		return Entry{}, false
	}
	return Entry{Symbol: sym, Len: int(cb.lengths[sym]), Bits: cb.codes[sym]}, true
}

// Code returns the code of byte b as a bit string, or "" if b has no code.
func (cb *Codebook) Code(b byte) string {
	e, ok := cb.Lookup(Symbol(b))
	if !ok {
		return ""
	}
	return e.String()
}

// Len returns the code length of sym, 0 if absent.
func (cb *Codebook) Len(sym Symbol) int {
	if int(sym) >= NumSymbols {
		return 0
	}
	return int(cb.lengths[sym])
}

// MaxLen returns the longest code length.
func (cb *Codebook) MaxLen() int { return int(cb.maxLen) }

// Lengths returns the code length of every symbol in symbol order.
func (cb *Codebook) Lengths() []int {
	out := make([]int, NumSymbols)
	for i, v := range cb.lengths {
		out[i] = int(v)
	}
	return out
}

// Entries returns all codes in canonical order: by length, then symbol.
func (cb *Codebook) Entries() []Entry {
	out := make([]Entry, len(cb.order))
	for i, sym := range cb.order {
		out[i] = Entry{Symbol: sym, Len: int(cb.lengths[sym]), Bits: cb.codes[sym]}
	}
	return out
}

// Equal reports whether cb and other assign the same codes.
func (cb *Codebook) Equal(other *Codebook) bool {
	if cb == nil || other == nil {
		return cb == other
	}
	return cb.lengths == other.lengths
}

// match returns the symbol whose code is the n-bit value code.
func (cb *Codebook) match(code uint32, n uint8) (Symbol, bool) {
	c := cb.count[n]
	if c == 0 {
		return 0, false
	}
	if d := code - cb.first[n]; d < c {
		return cb.order[cb.offset[n]+d], true
	}
	return 0, false
}
