package minilzo

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzo test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "multi-chunk", data: multiChunkInput()},
		{name: "random-64k", data: randomBytes(64 << 10)},
	}
}

// multiChunkInput crosses several 48 KiB table resets with far and near repeats.
func multiChunkInput() []byte {
	block := make([]byte, 5000)
	for i := range block {
		block[i] = byte((i * 7) ^ (i >> 3))
	}

	return bytes.Repeat(block, 40)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return b
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(cmp), 3)
			require.Equal(t, []byte{endOfStream, 0, 0}, cmp[len(cmp)-3:], "missing stream terminator")
			require.LessOrEqual(t, len(cmp), MaxCompressedSize(len(in.data)))

			out, err := DecompressSafe(cmp, len(in.data))
			require.NoError(t, err)
			require.True(t, bytes.Equal(out, in.data), "safe round-trip mismatch: got=%d want=%d", len(out), len(in.data))

			fast, err := Decompress(cmp, len(in.data))
			require.NoError(t, err)
			require.True(t, bytes.Equal(fast, out), "unchecked and safe decoders disagree")
		})
	}
}

func TestCompress_KnownStreams(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "empty",
			in:   nil,
			want: []byte{0x11, 0x00, 0x00},
		},
		{
			name: "short-literal-only",
			in:   []byte("hello world"),
			want: append(append([]byte{0x1c}, "hello world"...), 0x11, 0x00, 0x00),
		},
		{
			// 5 literals, M3 match of 999 bytes at distance 5, 20 tail literals.
			name: "zeros-1024",
			in:   make([]byte, 1024),
			want: append(append(
				[]byte{0x02, 0, 0, 0, 0, 0, 0x20, 0, 0, 0, 0xc9, 0x10, 0x00, 0x00, 0x02},
				make([]byte, 20)...),
				0x11, 0x00, 0x00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New()
			require.NoError(t, err)

			got, err := c.Compress(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCompress_ZerosRoundTrip(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	out, err := c.Compress(make([]byte, 1024))
	require.NoError(t, err)

	dec, err := DecompressSafe(out, 1024)
	require.NoError(t, err)
	require.Len(t, dec, 1024)
	require.Equal(t, make([]byte, 1024), dec)
}

func TestCompress_EmptyStream(t *testing.T) {
	out, err := Compress(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x11, 0x00, 0x00}, out)

	dec, err := DecompressSafe(out, 0)
	require.NoError(t, err)
	require.Empty(t, dec)
}

func TestCompress_RandomMiB(t *testing.T) {
	data := randomBytes(1 << 20)

	out, err := Compress(data)
	require.NoError(t, err)
	require.LessOrEqual(t, len(out), len(data)+len(data)/16+64+3)

	dec, err := DecompressSafe(out, len(data))
	require.NoError(t, err)
	require.True(t, bytes.Equal(dec, data), "1 MiB random round-trip mismatch")
}

func TestCompress_LargeMixedInput(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}

	data := append(randomBytes(1<<20), bytes.Repeat([]byte("lzo1x-1 "), 3<<17)...)
	data = append(data, randomBytes(512<<10)...)

	out, err := Compress(data)
	require.NoError(t, err)
	require.Less(t, len(out), len(data))

	dec, err := DecompressSafe(out, len(data))
	require.NoError(t, err)
	require.True(t, bytes.Equal(dec, data))
}

func TestCompress_Deterministic(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			c1, err := New()
			require.NoError(t, err)
			c2, err := New()
			require.NoError(t, err)

			a, err := c1.Compress(in.data)
			require.NoError(t, err)
			b, err := c2.Compress(in.data)
			require.NoError(t, err)
			require.Equal(t, a, b)

			// A reused instance must not carry table state between calls.
			again, err := c1.Compress(in.data)
			require.NoError(t, err)
			require.Equal(t, a, again)

			pooled, err := Compress(in.data)
			require.NoError(t, err)
			require.Equal(t, a, pooled)
		})
	}
}

func TestCompressInto_OutputTooSmall(t *testing.T) {
	data := randomBytes(4096)
	c, err := New()
	require.NoError(t, err)

	full := make([]byte, MaxCompressedSize(len(data)))
	n, err := c.CompressInto(full, data)
	require.NoError(t, err)

	for _, size := range []int{0, 2, n / 2, n - 1} {
		got, err := c.CompressInto(make([]byte, size), data)
		require.ErrorIs(t, err, ErrOutOfMemory, "dst size %d", size)
		require.Zero(t, got)
	}

	exact := make([]byte, n)
	got, err := c.CompressInto(exact, data)
	require.NoError(t, err)
	require.Equal(t, n, got)
	require.Equal(t, full[:n], exact)
}

func TestCompressInto_TerminatorDoesNotFit(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.CompressInto(make([]byte, 2), nil)
	require.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestMaxCompressedSize(t *testing.T) {
	require.Equal(t, 67, MaxCompressedSize(0))
	require.Equal(t, 1024+64+67, MaxCompressedSize(1024))
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		if len(cmp) > MaxCompressedSize(len(data)) {
			t.Fatalf("worst-case bound exceeded: %d > %d", len(cmp), MaxCompressedSize(len(data)))
		}

		out, err := DecompressSafe(cmp, len(data))
		if err != nil {
			t.Fatalf("DecompressSafe failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
