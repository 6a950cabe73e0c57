// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"fmt"
	"io"
)

// DecompressFromReader reads the full stream then decodes it with the safe
// decompressor. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, it fails with a wrapped ErrInvalidArgument.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: options required: OutLen must be set", ErrInvalidArgument)
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, fmt.Errorf("%w: input exceeds MaxInputSize %d", ErrInvalidArgument, opts.MaxInputSize)
	}

	if opts.AllowTrailing {
		out, _, err := DecompressSafeN(src, opts.OutLen)
		return out, err
	}

	return DecompressSafe(src, opts.OutLen)
}
