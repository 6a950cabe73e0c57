// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// CompressInto compresses src into dst and returns the stream length.
// dst should hold MaxCompressedSize(len(src)) bytes; if the stream does not fit,
// ErrOutOfMemory is returned and the contents of dst are unspecified.
func (c *Compressor) CompressInto(dst, src []byte) (int, error) {
	outPos := 0
	inPos := 0
	remaining := len(src)
	literalTail := 0

	// Each chunk gets a fresh table, which caps distances at maxOffsetM4.
	for remaining > chunkMargin {
		n := min(remaining, chunkSize)
		clear(c.dict[:])

		var err error
		literalTail, err = c.compressChunk(dst, &outPos, src, inPos, n, literalTail)
		if err != nil {
			return 0, err
		}

		inPos += n
		remaining -= n
	}

	literalTail += remaining
	if err := encodeLiteralRun(dst, &outPos, src[len(src)-literalTail:], true); err != nil {
		return 0, err
	}

	if err := encodeEndOfStream(dst, &outPos); err != nil {
		return 0, err
	}

	return outPos, nil
}

// compressChunk runs the greedy LZO1X-1 parse over src[base:base+n].
// carried is the number of literals still pending from the previous chunk; the
// return value is the number pending at the end of this one.
func (c *Compressor) compressChunk(dst []byte, outPos *int, src []byte, base, n, carried int) (int, error) {
	end := base + n
	limit := end - chunkMargin
	literalStart := base

	inputPos := base
	if carried < 4 {
		inputPos += 4 - carried
	}

	// Literal step with lazy skip: the longer the literal run, the bigger the stride.
	inputPos += 1 + (inputPos-literalStart)>>5

	for inputPos < limit {
		matchOff, matchLen := c.findMatch(src, base, inputPos, limit)
		if matchLen == 0 {
			inputPos += 1 + (inputPos-literalStart)>>5
			continue
		}

		literalStart -= carried
		carried = 0

		if err := encodeLiteralRun(dst, outPos, src[literalStart:inputPos], false); err != nil {
			return 0, err
		}

		inputPos += matchLen
		literalStart = inputPos

		if err := encodeMatch(dst, outPos, matchLen, matchOff); err != nil {
			return 0, err
		}
	}

	return end - (literalStart - carried), nil
}
