// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/fastgo/codec/compress/huffman/internal/prefix"
)

// The header lists the decimal code length of every symbol, byte values
// 0 to 255 then EOF, separated by spaces and terminated by headerDelim.
const headerDelim = 0x00

// maxHeaderSize bounds the header produced by AppendHeader.
const maxHeaderSize = NumSymbols * 3

// AppendHeader appends the code length header of cb to dst.
func (cb *Codebook) AppendHeader(dst []byte) []byte {
	for sym, v := range cb.lengths {
		if sym > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendUint(dst, uint64(v), 10)
	}
	return append(dst, headerDelim)
}

// WriteTo writes the code length header of cb to w.
func (cb *Codebook) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(cb.AppendHeader(make([]byte, 0, maxHeaderSize)))
	return int64(n), err
}

// ParseHeader reads a code length header from the start of src and
// returns its codebook with the number of bytes consumed.
func ParseHeader(src []byte) (*Codebook, int, error) {
	end := bytes.IndexByte(src, headerDelim)
	if end < 0 {
		return nil, 0, &MalformedHeaderError{Offset: len(src), Reason: "missing header delimiter"}
	}
	var l prefix.Lengths
	num := 0
	for pos := 0; pos < end; {
		if src[pos] == ' ' {
			pos++
			continue
		}
		start := pos
		for pos < end && src[pos] != ' ' {
			pos++
		}
		if num == NumSymbols {
			return nil, 0, &MalformedHeaderError{Offset: start,
				Reason: fmt.Sprintf("more than %d code lengths", NumSymbols)}
		}
		field := src[start:pos]
		v, err := strconv.Atoi(string(field))
		if err != nil {
			return nil, 0, &MalformedHeaderError{Offset: start,
				Reason: fmt.Sprintf("symbol %d: invalid code length %q", num, field)}
		}
		if v < 0 {
			return nil, 0, &MalformedHeaderError{Offset: start,
				Reason: fmt.Sprintf("symbol %d: negative code length %d", num, v)}
		}
		if v > MaxCodeLength {
			return nil, 0, &MalformedHeaderError{Offset: start,
				Reason: fmt.Sprintf("symbol %d: code length %d exceeds %d", num, v, MaxCodeLength)}
		}
		l[num] = uint8(v)
		num++
	}
	if num != NumSymbols {
		return nil, 0, &MalformedHeaderError{Offset: end,
			Reason: fmt.Sprintf("got %d code lengths, want %d", num, NumSymbols)}
	}
	if err := checkLengths(&l); err != nil {
		return nil, 0, &MalformedHeaderError{Offset: end, Reason: err.Error()}
	}
	return newCodebook(l), end + 1, nil
}
