// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"sync"
	"unsafe"
)

var (
	selfCheckOnce sync.Once
	selfCheckErr  error
)

// selfCheckStream expands to 512 zero bytes: one literal, an extended M3
// match of 511 bytes at distance 1, then the terminator.
var selfCheckStream = []byte{0x12, 0x00, 0x20, 0x00, 0xdf, 0x00, 0x00, 0x11, 0x00, 0x00}

// SelfCheck verifies the integer widths the stream format depends on and that a
// known stream decodes correctly. The check runs once per process; later calls
// return the cached result. A failure is reported as ErrInternalError.
func SelfCheck() error {
	selfCheckOnce.Do(func() {
		selfCheckErr = runSelfCheck()
	})

	return selfCheckErr
}

func runSelfCheck() error {
	var c Compressor
	switch {
	case unsafe.Sizeof(uint16(0)) != 2,
		unsafe.Sizeof(uint32(0)) != 4,
		unsafe.Sizeof(int(0)) < 4,
		unsafe.Sizeof(c.dict) != workMemSize:
		return ErrInternalError
	}

	out, err := DecompressSafe(selfCheckStream, 512)
	if err != nil {
		return ErrInternalError
	}

	for _, b := range out {
		if b != 0 {
			return ErrInternalError
		}
	}

	if Checksum(out) != 0x02000001 {
		return ErrInternalError
	}

	return nil
}
