// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package frame

import "errors"

// Frame errors. Codec failures inside a frame are wrapped minilzo.Error values.
var (
	// ErrBadMagic is returned when the input does not start with the frame magic.
	ErrBadMagic = errors.New("frame: bad magic")
	// ErrUnknownFlags is returned when the header carries flag bits this package does not know.
	ErrUnknownFlags = errors.New("frame: unknown flags")
	// ErrTruncated is returned when the header or payload is cut short.
	ErrTruncated = errors.New("frame: truncated")
	// ErrChecksumMismatch is returned when a stored checksum does not match the data.
	ErrChecksumMismatch = errors.New("frame: checksum mismatch")
	// ErrTooLarge is returned when the input does not fit the 32-bit length fields.
	ErrTooLarge = errors.New("frame: input exceeds 4 GiB")
	// ErrTrailingData is returned by Decode when bytes follow the payload.
	ErrTrailingData = errors.New("frame: trailing bytes after payload")
)
