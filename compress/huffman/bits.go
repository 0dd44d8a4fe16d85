// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Pack returns the codes of src followed by the EOF code, most significant
// bit first. The last byte is padded with zero bits.
func (cb *Codebook) Pack(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := cb.pack(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cb *Codebook) pack(out *bytes.Buffer, src []byte) error {
	w := bitio.NewWriter(out)
	for i, b := range src {
		n := cb.lengths[b]
		if n == 0 {
			return &UnknownSymbolError{Symbol: b, Offset: i}
		}
		if err := w.WriteBits(uint64(cb.codes[b]), n); err != nil {
			return err
		}
	}
	if err := w.WriteBits(uint64(cb.codes[EOF]), cb.lengths[EOF]); err != nil {
		return err
	}
	// Close pads and writes the partial byte.
	return w.Close()
}

// Unpack decodes payload up to the EOF code. Bits after it are ignored.
func (cb *Codebook) Unpack(payload []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, 2*len(payload))
	var (
		code  uint32
		n     uint8
		pos   int64 // bits read
		start int64 // first bit of the current code
	)
	for {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &UndecodableStreamError{BitOffset: start, Decoded: len(out), Truncated: true}
			}
			return nil, err
		}
		pos++
		code <<= 1
		if bit {
			code |= 1
		}
		n++
		if sym, ok := cb.match(code, n); ok {
			if sym == EOF {
				return out, nil
			}
			out = append(out, byte(sym))
			code, n, start = 0, 0, pos
			continue
		}
		if n >= cb.maxLen {
			return nil, &UndecodableStreamError{BitOffset: start, Decoded: len(out)}
		}
	}
}
