// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// shortMatchBaseOffset is the base distance of the 3-byte M1 form that may
// follow a literal run of 4 or more bytes.
const shortMatchBaseOffset = maxOffsetM2

// DecompressSafe decodes src into a new buffer of exactly outLen bytes, checking
// every read and write. It is strict: unread bytes after the end marker fail with
// ErrInputNotConsumed and a stream shorter than outLen fails with ErrOutputNotConsumed.
// No partial output is returned with an error.
func DecompressSafe(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrInvalidArgument
	}

	dst := make([]byte, outLen)
	if _, err := DecompressSafeInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressSafeInto decodes src into caller-managed dst with the same strict
// rules as DecompressSafe: the stream must fill dst exactly and be fully consumed.
// It returns the number of bytes written, which equals len(dst) on success.
func DecompressSafeInto(dst, src []byte) (int, error) {
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return 0, err
	}

	if inConsumed < len(src) {
		return 0, ErrInputNotConsumed
	}

	if outWritten < len(dst) {
		return 0, ErrOutputNotConsumed
	}

	return outWritten, nil
}

// DecompressSafeN is the permissive variant: it stops at the end marker, tolerates
// trailing input and output shorter than outLen. It returns the decoded slice and
// the number of input bytes consumed, so back-to-back blocks can be walked with
// src = src[nRead:].
func DecompressSafeN(src []byte, outLen int) ([]byte, int, error) {
	if outLen < 0 {
		return nil, 0, ErrInvalidArgument
	}

	dst := make([]byte, outLen)
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// decompressCore decodes LZO1X data from src into dst using a state machine.
// It returns (bytes written, input bytes consumed, nil) once the end marker is
// read. On error it returns (0, 0, err).
//
// state is the number of literals copied after the previous instruction; 4
// stands for a long literal run. It selects the meaning of opcodes below 16.
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	var (
		state  int
		inPos  int
		outPos int
	)

	// A first byte above 17 encodes an initial literal run directly.
	if len(src) > 0 && src[0] > 17 {
		inPos = 1
		runLen := int(src[0]) - 17
		if err := copyLiteralRun(src, &inPos, dst, &outPos, runLen); err != nil {
			return 0, 0, err
		}

		state = min(runLen, 4)
	}

	for {
		// Input ending on an instruction boundary means the terminator is missing.
		if inPos >= len(src) {
			return 0, 0, ErrEOFNotFound
		}

		inst := src[inPos]
		inPos++

		var matchLen, matchDist int

		switch {
		case inst >= markerM2:
			b, err := readCompressedByte(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			matchDist = (int(b) << 3) + ((int(inst) >> 2) & 0x7) + 1
			matchLen = (int(inst) >> 5) + 1

		case inst >= markerM3:
			matchLen = int(inst&0x1f) + 2
			if matchLen == 2 {
				ext, err := readExtendedLength(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				matchLen += ext + maxLenM3 - 2
			}

			v16, err := readCompressedLE16(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			matchDist = (int(v16) >> 2) + 1

		case inst >= markerM4:
			matchLen = int(inst&0x7) + 2
			if matchLen == 2 {
				ext, err := readExtendedLength(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				matchLen += ext + maxLenM4 - 2
			}

			v16, err := readCompressedLE16(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			baseDist := ((int(inst) & 0x8) << 11) + (int(v16) >> 2)
			if baseDist == 0 {
				return outPos, inPos, nil
			}

			matchDist = baseDist + maxOffsetM3

		case state == 0:
			// In state 0 this opcode form encodes a literal-run length directly
			// (with optional zero-extension for long runs).
			runLen := int(inst) + 3
			if inst == 0 {
				ext, err := readExtendedLength(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				runLen = ext + maxShortLiteral
			}

			if err := copyLiteralRun(src, &inPos, dst, &outPos, runLen); err != nil {
				return 0, 0, err
			}

			state = 4
			continue

		default:
			// M1: a short back-reference that needs one trailing byte for the
			// remaining distance bits.
			tail, err := readCompressedByte(src, &inPos)
			if err != nil {
				return 0, 0, err
			}

			matchDist = (int(inst) >> 2) + (int(tail) << 2) + 1
			matchLen = 2
			if state == 4 {
				matchDist += shortMatchBaseOffset
				matchLen = 3
			}
		}

		if err := copyBackRef(dst, outPos, matchDist, matchLen); err != nil {
			return 0, 0, err
		}
		outPos += matchLen

		// The low two bits of the instruction's second-to-last byte count the
		// literals that follow the match.
		state = int(src[inPos-2] & 0x03)
		if err := copyLiteralRun(src, &inPos, dst, &outPos, state); err != nil {
			return 0, 0, err
		}
	}
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if len(src)-*inPos < 2 {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readExtendedLength consumes a zero-extended length: a run of zero bytes worth
// 255 each, then a non-zero tail byte. It returns the run value plus the tail.
func readExtendedLength(src []byte, inPos *int) (int, error) {
	start := *inPos
	for *inPos < len(src) && src[*inPos] == 0 {
		*inPos++
	}

	zeros := *inPos - start
	if zeros > maxZeroRun {
		return 0, ErrInputOverrun
	}

	tail, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, err
	}

	return zeros*255 + int(tail), nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both positions.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if n > len(dst)-*outPos {
		return ErrOutputOverrun
	}

	if n > len(src)-*inPos {
		return ErrInputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
