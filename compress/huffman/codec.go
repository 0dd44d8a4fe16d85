// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// Codec encodes and decodes complete messages. It retains the codebook of
// the last successful call so later messages can reuse it.
// A Codec is not safe for concurrent use; the Codebook it hands out is.
type Codec struct {
	opts     options
	codebook *Codebook
}

// NewCodec creates a Codec configured by opts.
func NewCodec(opts ...Option) (*Codec, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Codec{opts: o, codebook: o.codebook}, nil
}

// Encode builds a fresh codebook from src and returns the header followed
// by the packed payload.
func (c *Codec) Encode(src []byte) ([]byte, error) {
	return c.encode(src, true)
}

// EncodeReuse encodes src with the retained codebook, building one only if
// none exists yet. A byte without a code fails with *UnknownSymbolError.
func (c *Codec) EncodeReuse(src []byte) ([]byte, error) {
	return c.encode(src, false)
}

func (c *Codec) encode(src []byte, rebuild bool) ([]byte, error) {
	cb := c.codebook
	if rebuild || cb == nil {
		var err error
		cb, err = buildCodebook(src, &c.opts)
		if err != nil {
			return nil, err
		}
	}
	buf := bytes.NewBuffer(cb.AppendHeader(make([]byte, 0, maxHeaderSize+len(src)/2)))
	headerLen := buf.Len()
	if err := cb.pack(buf, src); err != nil {
		return nil, err
	}
	c.codebook = cb
	c.opts.log.WithFields(logrus.Fields{
		"input":   len(src),
		"header":  headerLen,
		"payload": buf.Len() - headerLen,
		"rebuilt": rebuild,
	}).Debug("huffman: encoded")
	return buf.Bytes(), nil
}

// Decode reads the header of src, rebuilds its codebook and decodes the
// payload. The decoded codebook is retained.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	cb, n, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}
	out, err := cb.Unpack(src[n:])
	if err != nil {
		return nil, err
	}
	c.codebook = cb
	c.opts.log.WithFields(logrus.Fields{
		"header":  n,
		"payload": len(src) - n,
		"output":  len(out),
	}).Debug("huffman: decoded")
	return out, nil
}

// Code returns the code of b in the retained codebook, "" if there is none.
func (c *Codec) Code(b byte) string {
	if c.codebook == nil {
		return ""
	}
	return c.codebook.Code(b)
}

// Codebook returns the retained codebook, nil before the first call.
func (c *Codec) Codebook() *Codebook { return c.codebook }

// Reset drops the retained codebook.
func (c *Codec) Reset() { c.codebook = nil }

// Encode encodes src with a fresh codebook and default options.
func Encode(src []byte) ([]byte, error) {
	c := &Codec{}
	c.opts, _ = newOptions(nil)
	return c.Encode(src)
}

// Decode decodes a stream produced by Encode.
func Decode(src []byte) ([]byte, error) {
	c := &Codec{}
	c.opts, _ = newOptions(nil)
	return c.Decode(src)
}
