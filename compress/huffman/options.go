// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fastgo/codec/compress/huffman/internal/prefix"
)

// Strategy selects how code lengths are computed from symbol frequencies.
// Both produce optimal lengths; canonical assignment makes the resulting
// codes depend only on those lengths.
type Strategy uint8

const (
	// TreeStrategy builds the Huffman tree with a priority queue.
	TreeStrategy Strategy = iota
	// InPlaceStrategy computes the lengths in place without a tree.
	InPlaceStrategy
)

func (s Strategy) String() string {
	switch s {
	case TreeStrategy:
		return "tree"
	case InPlaceStrategy:
		return "inplace"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy returns the strategy named by s.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "tree", "":
		return TreeStrategy, nil
	case "inplace":
		return InPlaceStrategy, nil
	}
	return 0, fmt.Errorf("huffman: unknown strategy %q", s)
}

// Option configures a Codec.
type Option func(*options)

type options struct {
	log        logrus.FieldLogger
	strategy   Strategy
	maxCodeLen int
	codebook   *Codebook
}

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithStrategy sets the code length strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithMaxCodeLength limits code lengths to n bits, MinCodeLength <= n <= MaxCodeLength.
// Inputs whose optimal code is deeper get flattened codes.
func WithMaxCodeLength(n int) Option {
	return func(o *options) { o.maxCodeLen = n }
}

// WithCodebook preloads a codebook for EncodeReuse.
func WithCodebook(cb *Codebook) Option {
	return func(o *options) { o.codebook = cb }
}

func newOptions(opts []Option) (options, error) {
	o := options{
		log:        logrus.StandardLogger(),
		strategy:   TreeStrategy,
		maxCodeLen: MaxCodeLength,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}
	if o.maxCodeLen < prefix.MinCodeLen || o.maxCodeLen > prefix.MaxCodeLen {
		return o, fmt.Errorf("huffman: max code length %d out of range [%d, %d]",
			o.maxCodeLen, prefix.MinCodeLen, prefix.MaxCodeLen)
	}
	if o.strategy != TreeStrategy && o.strategy != InPlaceStrategy {
		return o, fmt.Errorf("huffman: invalid %v", o.strategy)
	}
	return o, nil
}
