// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

/*
Package frame wraps LZO1X-1 streams in a small self-describing container that
carries what the raw stream cannot: the decompressed length and checksums.

Layout (big endian):

	magic[7] flags[1] rawLen[4] payloadLen[4] adler32(raw)[4] [xxhash64(payload)[8]] payload

Payloads that do not shrink are stored raw (FlagStored), the way lzop handles
incompressible blocks. Frames can be concatenated and read back one by one with
ReadFrame.
*/
package frame

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/woozymasta/minilzo"
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// PayloadHash adds an xxhash64 of the payload, so corruption is caught
	// before the payload reaches the decompressor.
	PayloadHash bool
	// RequireCompressible fails with minilzo.ErrNotCompressible instead of
	// storing incompressible input raw.
	RequireCompressible bool
}

// DefaultEncodeOptions returns options with the payload hash enabled.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{PayloadHash: true}
}

// Encode compresses src and returns a complete frame. opts may be nil.
func Encode(src []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	if uint64(len(src)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	payload, err := minilzo.Compress(src)
	if err != nil {
		return nil, fmt.Errorf("frame: compress: %w", err)
	}

	h := Header{
		RawLen:      uint32(len(src)), //nolint:gosec // G115: checked against MaxUint32 above
		RawChecksum: minilzo.Checksum(src),
	}

	if len(payload) >= len(src) {
		if opts.RequireCompressible {
			return nil, fmt.Errorf("frame: %d bytes: %w", len(src), minilzo.ErrNotCompressible)
		}

		payload = src
		h.Flags |= FlagStored
	}

	h.PayloadLen = uint32(len(payload)) //nolint:gosec // G115: payload is no longer than the worst-case bound
	if opts.PayloadHash {
		h.Flags |= FlagPayloadHash
		h.PayloadHash = xxhash.Sum64(payload)
	}

	out := make([]byte, 0, h.Size()+len(payload))
	out = h.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Decode verifies and decompresses a single frame occupying all of b.
func Decode(b []byte) ([]byte, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}

	body := b[h.Size():]
	switch {
	case uint64(len(body)) < uint64(h.PayloadLen):
		return nil, ErrTruncated
	case uint64(len(body)) > uint64(h.PayloadLen):
		return nil, ErrTrailingData
	}

	return decodePayload(h, body)
}

// ReadFrame reads one frame from r and returns the decompressed data.
// It returns io.EOF only when r is exhausted before the first header byte.
func ReadFrame(r io.Reader) ([]byte, error) {
	prefix := make([]byte, prefixSize, baseHeaderSize+hashSize)
	if _, err := io.ReadFull(r, prefix); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}

	flags, err := parsePrefix(prefix)
	if err != nil {
		return nil, err
	}

	raw := prefix[:headerSize(flags)]
	if _, err := io.ReadFull(r, raw[prefixSize:]); err != nil {
		return nil, truncated(err)
	}

	h, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}

	// Grow with the data actually read rather than trusting PayloadLen for one allocation.
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r, int64(h.PayloadLen)); err != nil {
		return nil, truncated(err)
	}

	return decodePayload(h, payload.Bytes())
}

// maxExpansion bounds the output of an LZO1X stream of n bytes: one
// zero-extension byte stands for at most 255 output bytes.
func maxExpansion(n uint32) uint64 {
	return 256*uint64(n) + 64
}

// decodePayload checks the payload hash, restores the raw data and verifies its checksum.
func decodePayload(h Header, payload []byte) ([]byte, error) {
	// RawLen is allocated up front, so refuse lengths the payload cannot produce.
	if uint64(h.RawLen) > maxExpansion(h.PayloadLen) {
		return nil, fmt.Errorf("frame: %d raw bytes from a %d byte payload: %w",
			h.RawLen, h.PayloadLen, minilzo.ErrOutputOverrun)
	}

	if h.Flags&FlagPayloadHash != 0 {
		if got := xxhash.Sum64(payload); got != h.PayloadHash {
			return nil, fmt.Errorf("%w: payload xxhash %016x, header %016x", ErrChecksumMismatch, got, h.PayloadHash)
		}
	}

	var out []byte
	if h.Flags&FlagStored != 0 {
		if h.PayloadLen != h.RawLen {
			return nil, fmt.Errorf("frame: stored payload of %d bytes for %d raw bytes: %w",
				h.PayloadLen, h.RawLen, minilzo.ErrOutputNotConsumed)
		}

		out = bytes.Clone(payload)
		if out == nil {
			out = []byte{}
		}
	} else {
		var err error
		out, err = minilzo.DecompressSafe(payload, int(h.RawLen))
		if err != nil {
			return nil, fmt.Errorf("frame: decompress: %w", err)
		}
	}

	if got := minilzo.Checksum(out); got != h.RawChecksum {
		return nil, fmt.Errorf("%w: adler32 %08x, header %08x", ErrChecksumMismatch, got, h.RawChecksum)
	}

	return out, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
