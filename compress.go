// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import "sync"

// Compressor is an LZO1X-1 encoder. It owns the fixed-size scratch table used
// for match finding, so one instance must not run overlapping Compress calls.
// Instances are reusable; every call starts from an empty table.
type Compressor struct {
	dict [dictSize]uint16
}

// compressorPool hands out compressors to the package-level Compress.
var compressorPool = sync.Pool{
	New: func() any {
		return &Compressor{}
	},
}

// New returns a compressor after the one-time platform self-check succeeds.
func New() (*Compressor, error) {
	if err := SelfCheck(); err != nil {
		return nil, err
	}

	return &Compressor{}, nil
}

// MaxCompressedSize returns the worst-case LZO1X-1 output size for n input bytes.
func MaxCompressedSize(n int) int {
	return n + n/16 + 64 + 3
}

// Compress compresses src with LZO1X-1 using a pooled compressor.
// It is safe for concurrent use.
func Compress(src []byte) ([]byte, error) {
	if err := SelfCheck(); err != nil {
		return nil, err
	}

	c := compressorPool.Get().(*Compressor)
	defer compressorPool.Put(c)

	return c.Compress(src)
}

// Compress compresses src into a newly allocated stream.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, MaxCompressedSize(len(src)))
	n, err := c.CompressInto(dst, src)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
