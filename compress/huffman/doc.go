// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a canonical Huffman codec for byte streams.
//
// A compressed stream is a header followed by a payload. The header lists
// the code length of every symbol as space separated decimal numbers, byte
// values 0 to 255 and then the end-of-stream symbol EOF, terminated by a
// NUL byte. The payload holds the code of every input byte followed by the
// EOF code, most significant bit first, with the last byte padded by zero
// bits. Decoding stops at the EOF code, so padding is never read as data.
//
// Only code lengths are transmitted: codes are assigned canonically, in
// order of (length, symbol), so any two parties holding the same lengths
// derive the same codes.
//
//	out, err := huffman.Encode([]byte("HHHHEELLLLLLLOO WOOOOORRLLLLLLDP"))
//	...
//	data, err := huffman.Decode(out)
//
// The whole message is scanned for frequencies before it is encoded;
// Writer and the reader returned by NewReader buffer complete messages.
package huffman
