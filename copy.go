// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// When dist < length the ranges overlap and the copy runs byte by byte in
// increasing order, which expands runs (dist 1 repeats a single byte).
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if mPos < 0 || dist <= 0 {
		return ErrLookbehindOverrun
	}

	if length > len(dst)-outputPos {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
