// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// LZO1X format constants: M1/M2/M3/M4 offset and length bounds, and dictionary parameters.

// Match offset bounds (max distance for each match type).
const (
	maxOffsetM1 = 0x0400
	maxOffsetM2 = 0x0800
	maxOffsetM3 = 0x4000
	maxOffsetM4 = 0xbfff
)

// Match length bounds per type.
const (
	maxLenM2 = 8
	maxLenM3 = 33
	maxLenM4 = 9
)

// Instruction byte markers for match types.
const (
	markerM1 = 0
	markerM2 = 64
	markerM3 = 32
	markerM4 = 16
)

// Literal run encodings.
const (
	maxFirstLiteral = 238 // longest run the 17+n first op-code can carry
	maxShortLiteral = 18  // longest run with a single n-3 length byte
)

// LZO1X-1 compressor parameters.
const (
	dictBits    = 14            // number of bits in the dictionary hash
	dictSize    = 1 << dictBits // number of scratch table entries
	dictMul     = 0x1824429d    // multiplicative hash constant
	chunkSize   = 49152         // bytes per table reset; keeps distances <= maxOffsetM4
	chunkMargin = 20            // bytes at a chunk end never searched for matches
	minMatchLen = 4             // LZO1X-1 only accepts 4-byte candidates
	workMemSize = dictSize * 2  // scratch bytes per compressor instance
	endOfStream = markerM4 | 1  // first byte of the 0x11 0x00 0x00 terminator
)

// maxZeroRun limits zero-extension runs so malformed inputs cannot overflow
// run-length reconstruction math.
const maxZeroRun = int(^uint(0)/255) - 2
