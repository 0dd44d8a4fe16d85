// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"
)

// Writer compresses everything written to it as one message.
// The frequencies of the whole message are needed before the first code,
// so nothing reaches the underlying writer until Close.
type Writer struct {
	err    error
	c      *Codec
	w      io.Writer
	buf    bytes.Buffer
	reuse  bool
	closed bool
}

// NewWriter creates a Writer on top of w configured by opts.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	c, err := NewCodec(opts...)
	if err != nil {
		return nil, err
	}
	return c.NewWriter(w), nil
}

// NewWriter creates a Writer that encodes with c. Every message builds a
// fresh codebook.
func (c *Codec) NewWriter(w io.Writer) *Writer {
	return &Writer{c: c, w: w}
}

// NewReuseWriter creates a Writer that encodes with the codebook retained
// by c, as EncodeReuse does.
func (c *Codec) NewReuseWriter(w io.Writer) *Writer {
	return &Writer{c: c, w: w, reuse: true}
}

// Write buffers data.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errWriterClosed
	}
	return w.buf.Write(data)
}

// Close encodes the buffered message and writes it to the underlying
// writer. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true
	out, err := w.c.encode(w.buf.Bytes(), !w.reuse)
	if err != nil {
		w.err = err
		return err
	}
	if _, err = w.w.Write(out); err != nil {
		w.err = err
		return err
	}
	w.buf.Reset()
	return nil
}

// Reset discards buffered data and switches to a new underlying writer.
// This allows reusing the same Writer for multiple messages.
func (w *Writer) Reset(under io.Writer) {
	w.err = nil
	w.closed = false
	w.w = under
	w.buf.Reset()
}

// Codebook returns the codebook of the last message written.
func (w *Writer) Codebook() *Codebook { return w.c.Codebook() }
