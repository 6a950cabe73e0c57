// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// DecompressOptions configures DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size. The stream format does not carry
	// it, so it must travel alongside the compressed bytes.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// AllowTrailing accepts bytes after the end marker and output shorter than
	// OutLen instead of failing with ErrInputNotConsumed / ErrOutputNotConsumed.
	AllowTrailing bool
}

// DefaultDecompressOptions returns strict options for the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
