// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

/*
Package minilzo implements LZO1X-1 compression, two LZO1X decompressors and the
adler32 checksum LZO tooling uses for integrity checks.

The compressor is the single-pass greedy LZO1X-1 parser with a 16 KiB scratch
table (1<<14 uint16 slots). Streams use match types M1 to M4 with different offset
and length bounds and end with the terminator bytes `0x11 0x00 0x00`; output is
bit-compatible with liblzo's lzo1x_decompress_safe and any other LZO1X decoder.

The stream does not record its decompressed length. Callers carry it out of band
(see the frame subpackage for a ready-made container).

# Compress

Package-level Compress draws compressors from a pool and is safe for concurrent use:

	out, err := minilzo.Compress(data)

A Compressor owns its scratch table; reuse it from one goroutine at a time:

	c, err := minilzo.New()
	out, err := c.Compress(data)

	dst := make([]byte, minilzo.MaxCompressedSize(len(data)))
	n, err := c.CompressInto(dst, data) // ErrOutOfMemory if dst is too small

# Decompress

DecompressSafe checks every read and write and is the default choice:

	out, err := minilzo.DecompressSafe(compressed, expectedLen)

To walk back-to-back compressed blocks (trailing input tolerated):

	out, nRead, err := minilzo.DecompressSafeN(compressed, expectedLen)
	// advance: compressed = compressed[nRead:]

Decompress skips per-step checks and is meant for trusted streams only:

	out, err := minilzo.Decompress(compressed, expectedLen)

# Errors

Failures are values of the closed Error enumeration, numbered like liblzo result
codes; test them with errors.Is:

	if errors.Is(err, minilzo.ErrInputOverrun) { ... }

# Checksum

	sum := minilzo.Checksum(data)          // adler32 seeded with 1
	sum = minilzo.Adler32(sum, moreData)   // continue over further bytes
*/
package minilzo
