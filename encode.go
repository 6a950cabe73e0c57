// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// encodeLiteralRun writes one literal run and its length opcode. streamTail
// enables the compact 17+n form, which is only legal as the very first opcode.
func encodeLiteralRun(out []byte, outPos *int, lit []byte, streamTail bool) error {
	literalCount := len(lit)
	if literalCount == 0 {
		return nil
	}

	switch {
	// First token can carry a compact literal-run prefix directly.
	case streamTail && *outPos == 0 && literalCount <= maxFirstLiteral:
		if err := writeByte(out, outPos, opcodeByte(17+literalCount)); err != nil {
			return err
		}

	// Very short literal runs are packed into low bits of the previous match.
	case literalCount <= 3:
		if *outPos < 2 {
			return ErrInternalError
		}
		out[*outPos-2] |= opcodeByte(literalCount)

	case literalCount <= maxShortLiteral:
		if err := writeByte(out, outPos, opcodeByte(literalCount-3)); err != nil {
			return err
		}

	// Long literal runs use zero-extension encoding.
	default:
		if err := writeByte(out, outPos, 0); err != nil {
			return err
		}
		if err := writeZeroByteLength(out, outPos, literalCount-maxShortLiteral); err != nil {
			return err
		}
	}

	return writeSlice(out, outPos, lit)
}

// encodeMatch writes one back-reference with the shortest class that fits.
// LZO1X-1 never emits M1; those forms only come from LZO1X-999 streams.
func encodeMatch(out []byte, outPos *int, matchLen, matchOff int) error {
	switch {
	case matchLen <= maxLenM2 && matchOff <= maxOffsetM2:
		matchOff--
		if err := writeByte(out, outPos, opcodeByte((matchLen-1)<<5|(matchOff&7)<<2)); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>3))

	case matchOff <= maxOffsetM3:
		matchOff--
		if matchLen <= maxLenM3 {
			if err := writeByte(out, outPos, opcodeByte(markerM3|(matchLen-2))); err != nil {
				return err
			}
		} else {
			if err := writeByte(out, outPos, markerM3); err != nil {
				return err
			}
			if err := writeZeroByteLength(out, outPos, matchLen-maxLenM3); err != nil {
				return err
			}
		}

	case matchOff <= maxOffsetM4:
		matchOff -= maxOffsetM3
		head := (matchOff >> 11) & 8
		if matchLen <= maxLenM4 {
			if err := writeByte(out, outPos, opcodeByte(markerM4|head|(matchLen-2))); err != nil {
				return err
			}
		} else {
			if err := writeByte(out, outPos, opcodeByte(markerM4|head)); err != nil {
				return err
			}
			if err := writeZeroByteLength(out, outPos, matchLen-maxLenM4); err != nil {
				return err
			}
		}

	default:
		return ErrInternalError
	}

	if err := writeByte(out, outPos, opcodeByte(matchOff<<2)); err != nil {
		return err
	}
	return writeByte(out, outPos, opcodeByte(matchOff>>6))
}

// encodeEndOfStream writes the M4 terminator with zero distance.
func encodeEndOfStream(out []byte, outPos *int) error {
	return writeSlice(out, outPos, []byte{endOfStream, 0, 0})
}

// writeZeroByteLength writes long-length encoding as zero chunks plus tail.
func writeZeroByteLength(out []byte, outPos *int, length int) error {
	for length > 255 {
		if err := writeByte(out, outPos, 0); err != nil {
			return err
		}
		length -= 255
	}

	return writeByte(out, outPos, opcodeByte(length))
}

// writeByte writes one byte to out at *outPos.
func writeByte(out []byte, outPos *int, b byte) error {
	if *outPos >= len(out) {
		return ErrOutOfMemory
	}

	out[*outPos] = b
	*outPos++
	return nil
}

// writeSlice writes data to out at *outPos.
func writeSlice(out []byte, outPos *int, data []byte) error {
	if len(data) > len(out)-*outPos {
		return ErrOutOfMemory
	}

	copy(out[*outPos:], data)
	*outPos += len(data)
	return nil
}
