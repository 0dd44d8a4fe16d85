// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a frequency table has no symbol to encode.
	ErrEmptyInput = errors.New("huffman: no symbol to encode")

	errWriterClosed = errors.New("huffman: write to closed writer")
)

// UnknownSymbolError reports an input byte that has no code in the codebook
// used for encoding.
type UnknownSymbolError struct {
	Symbol byte
	Offset int // offset of the byte in the input
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: byte %#02x at offset %d has no code", e.Symbol, e.Offset)
}

// MalformedHeaderError reports a code length header that cannot be parsed
// into a valid codebook.
type MalformedHeaderError struct {
	Offset int // byte offset in the stream
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("huffman: malformed header at byte %d: %s", e.Offset, e.Reason)
}

// UndecodableStreamError reports a payload that does not decode to a
// message ending with the end-of-stream code.
type UndecodableStreamError struct {
	BitOffset int64 // payload bit offset where the failing code starts
	Decoded   int   // bytes decoded before the failing code
	Truncated bool  // the payload ended before the end-of-stream code
}

func (e *UndecodableStreamError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("huffman: stream truncated at bit %d after %d bytes", e.BitOffset, e.Decoded)
	}
	return fmt.Sprintf("huffman: invalid code at bit %d after %d bytes", e.BitOffset, e.Decoded)
}
