// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"io"
)

// Resetter resets a Reader returned by NewReader to read from a new source.
type Resetter interface {
	Reset(r io.Reader) error
}

// NewReader returns a reader that decompresses one message read from r.
// The whole message is read on the first call to Read.
func NewReader(r io.Reader) io.ReadCloser {
	c := &Codec{}
	c.opts, _ = newOptions(nil)
	return c.NewReader(r)
}

// NewReader returns a reader that decompresses with c.
func (c *Codec) NewReader(r io.Reader) io.ReadCloser {
	return &decompressor{c: c, r: r}
}

type decompressor struct {
	c       *Codec
	r       io.Reader
	out     []byte
	readPos int
	decoded bool
	err     error
}

func (d *decompressor) Reset(under io.Reader) error {
	d.r = under
	d.out = nil
	d.readPos = 0
	d.decoded = false
	d.err = nil
	return nil
}

func (d *decompressor) Close() error {
	return nil
}

func (d *decompressor) Read(b []byte) (n int, err error) {
	if d.err != nil {
		return 0, d.err
	}
	if !d.decoded {
		d.decoded = true
		src, err := io.ReadAll(d.r)
		if err != nil {
			d.err = fmt.Errorf("huffman: read stream: %w", err)
			return 0, d.err
		}
		d.out, d.err = d.c.Decode(src)
		if d.err != nil {
			return 0, d.err
		}
	}
	if d.readPos == len(d.out) {
		return 0, io.EOF
	}
	n = copy(b, d.out[d.readPos:])
	d.readPos += n
	return n, nil
}
