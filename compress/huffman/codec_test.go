// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const scenario = "HHHHEELLLLLLLOO WOOOOORRLLLLLLDP"

func readOpticks() ([]byte, error) {
	return os.ReadFile(filepath.Join(runtime.GOROOT(), "src", "testdata", "Isaac.Newton-Opticks.txt"))
}

func opticks(t testing.TB) []byte {
	data, err := readOpticks()
	if err != nil {
		t.Skip("skip for no test data file")
	}
	return data
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func newTestCodec(t testing.TB, opts ...Option) *Codec {
	c, err := NewCodec(append([]Option{WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	return c
}

func testInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 10000)
	rng.Read(random)
	skewed := make([]byte, 10000)
	for i := range skewed {
		skewed[i] = byte(int(rng.ExpFloat64()*20) & 0xff)
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	return map[string][]byte{
		"empty":    {},
		"single":   []byte("AAAA"),
		"one":      {'x'},
		"scenario": []byte(scenario),
		"nul":      {0, 0, 1, 0, 2},
		"allBytes": all,
		"random":   random,
		"skewed":   skewed,
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []Strategy{TreeStrategy, InPlaceStrategy} {
		for name, data := range testInputs() {
			t.Run(s.String()+"/"+name, func(t *testing.T) {
				c := newTestCodec(t, WithStrategy(s))
				encoded, err := c.Encode(data)
				require.NoError(t, err)

				decoded, err := newTestCodec(t).Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, data, decoded)
			})
		}
	}
}

func TestRoundTripOpticks(t *testing.T) {
	data := opticks(t)
	encoded, err := Encode(data)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(data))
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, decoded))
}

func TestSingleSymbol(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.Encode([]byte("AAAA"))
	require.NoError(t, err)
	require.Equal(t, 1, len(c.Code('A')))
	require.Equal(t, 1, c.Codebook().Len(EOF))

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "AAAA", string(decoded))
}

func TestScenario(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.Encode([]byte(scenario))
	require.NoError(t, err)

	cb := c.Codebook()
	lenL := cb.Len('L')
	require.NotZero(t, lenL)
	for _, e := range cb.Entries() {
		require.LessOrEqual(t, lenL, e.Len, "symbol %d", e.Symbol)
	}
	for _, b := range []byte("HELOWRDP ") {
		require.NotEmpty(t, c.Code(b), "symbol %q", b)
	}
	require.Empty(t, c.Code('Z'))

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, scenario, string(decoded))
}

func TestTruncatedStream(t *testing.T) {
	for name, data := range testInputs() {
		t.Run(name, func(t *testing.T) {
			encoded, err := Encode(data)
			require.NoError(t, err)

			decoded, err := Decode(encoded[:len(encoded)-1])
			require.Nil(t, decoded)
			var undecodable *UndecodableStreamError
			require.ErrorAs(t, err, &undecodable)
			require.True(t, undecodable.Truncated)
		})
	}
}

func TestInvalidCode(t *testing.T) {
	// only 'a' and EOF have codes: 0 and 10, so 11 matches nothing
	lengths := make([]int, NumSymbols)
	lengths['a'] = 1
	lengths[EOF] = 2
	cb, err := NewCodebook(lengths)
	require.NoError(t, err)
	stream := cb.AppendHeader(nil)
	stream = append(stream, 0b0110_0000)

	_, err = Decode(stream)
	var undecodable *UndecodableStreamError
	require.ErrorAs(t, err, &undecodable)
	require.False(t, undecodable.Truncated)
	require.Equal(t, int64(1), undecodable.BitOffset)
	require.Equal(t, 1, undecodable.Decoded)
}

func TestEncodeReuse(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Encode([]byte("abcabc"))
	require.NoError(t, err)
	first := c.Codebook()

	encoded, err := c.EncodeReuse([]byte("cab"))
	require.NoError(t, err)
	require.Same(t, first, c.Codebook())
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "cab", string(decoded))

	encoded, err = c.EncodeReuse([]byte("abz"))
	require.Nil(t, encoded)
	var unknown *UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte('z'), unknown.Symbol)
	require.Equal(t, 2, unknown.Offset)
	require.Same(t, first, c.Codebook())

	// rebuilding accepts the new symbol
	_, err = c.Encode([]byte("abz"))
	require.NoError(t, err)
	require.NotEmpty(t, c.Code('z'))
}

func TestEncodeReuseWithoutCodebook(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.EncodeReuse([]byte("hello"))
	require.NoError(t, err)
	require.NotNil(t, c.Codebook())
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "hello", string(decoded))
}

func TestWithCodebook(t *testing.T) {
	cb, err := BuildCodebook([]byte("0123456789"), WithLogger(quietLogger()))
	require.NoError(t, err)
	c := newTestCodec(t, WithCodebook(cb))
	encoded, err := c.EncodeReuse([]byte("31415926"))
	require.NoError(t, err)

	d := newTestCodec(t)
	decoded, err := d.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "31415926", string(decoded))
	require.True(t, cb.Equal(d.Codebook()))
}

func TestReset(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Encode([]byte("abc"))
	require.NoError(t, err)
	require.NotEmpty(t, c.Code('a'))
	c.Reset()
	require.Nil(t, c.Codebook())
	require.Empty(t, c.Code('a'))
}

func TestMaxCodeLength(t *testing.T) {
	// fibonacci counts give the deepest tree
	var data []byte
	a, b := 1, 1
	for sym := 0; sym < 20; sym++ {
		data = append(data, bytes.Repeat([]byte{byte('A' + sym)}, a)...)
		a, b = b, a+b
	}
	full := newTestCodec(t)
	_, err := full.Encode(data)
	require.NoError(t, err)
	require.Greater(t, full.Codebook().MaxLen(), MinCodeLength)

	limited := newTestCodec(t, WithMaxCodeLength(MinCodeLength))
	encoded, err := limited.Encode(data)
	require.NoError(t, err)
	require.Equal(t, MinCodeLength, limited.Codebook().MaxLen())

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestNewCodecInvalidOptions(t *testing.T) {
	_, err := NewCodec(WithMaxCodeLength(MinCodeLength - 1))
	require.Error(t, err)
	_, err = NewCodec(WithMaxCodeLength(MaxCodeLength + 1))
	require.Error(t, err)
	_, err = NewCodec(WithStrategy(Strategy(9)))
	require.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{TreeStrategy, InPlaceStrategy} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := ParseStrategy("adaptive")
	require.Error(t, err)
}

func BenchmarkEncode(b *testing.B) {
	data := opticks(b)
	c := newTestCodec(b)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encode(data)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := opticks(b)
	encoded, err := Encode(data)
	require.NoError(b, err)
	c := newTestCodec(b)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decode(encoded)
	}
}
