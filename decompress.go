// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import (
	"fmt"
	"runtime"
)

// Decompress decodes src into a buffer of exactly outLen bytes without checking
// individual reads and writes. Use it only for streams of trusted provenance,
// e.g. produced by Compress in the same process; anything else belongs to
// DecompressSafe.
//
// Malformed input trips the Go runtime's bounds checks; the panic is recovered
// and reported as a wrapped ErrUnspecified. The final length is still validated:
// a stream that ends before outLen bytes fails with ErrOutputNotConsumed.
// Trailing input after the end marker is ignored.
func Decompress(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrInvalidArgument
	}

	dst := make([]byte, outLen)
	n, err := decompressFast(src, dst)
	if err != nil {
		return nil, err
	}

	if n != outLen {
		return nil, ErrOutputNotConsumed
	}

	return dst, nil
}

// decompressFast mirrors decompressCore with the checks stripped.
func decompressFast(src, dst []byte) (outPos int, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}

			outPos, err = 0, fmt.Errorf("%w: corrupt stream: %v", ErrUnspecified, re)
		}
	}()

	var (
		ip    int
		op    int
		state int
		t     int
	)

	if src[0] > 17 {
		t = int(src[0]) - 17
		ip = 1
		copy(dst[op:op+t], src[ip:ip+t])
		ip += t
		op += t
		state = min(t, 4)
	}

	for {
		inst := int(src[ip])
		ip++

		var mPos int

		switch {
		case inst >= markerM2:
			mPos = op - 1 - (inst>>2)&7 - int(src[ip])<<3
			ip++
			t = inst>>5 + 1

		case inst >= markerM3:
			t = inst&31 + 2
			if t == 2 {
				for src[ip] == 0 {
					t += 255
					ip++
				}
				t += maxLenM3 - 2 + int(src[ip])
				ip++
			}

			mPos = op - 1 - (int(src[ip])|int(src[ip+1])<<8)>>2
			ip += 2

		case inst >= markerM4:
			t = inst&7 + 2
			if t == 2 {
				for src[ip] == 0 {
					t += 255
					ip++
				}
				t += maxLenM4 - 2 + int(src[ip])
				ip++
			}

			mPos = op - (inst&8)<<11 - (int(src[ip])|int(src[ip+1])<<8)>>2
			ip += 2
			if mPos == op {
				return op, nil
			}
			mPos -= maxOffsetM3

		case state == 0:
			t = inst + 3
			if inst == 0 {
				for src[ip] == 0 {
					t += 255
					ip++
				}
				t += maxShortLiteral - 3 + int(src[ip])
				ip++
			}

			copy(dst[op:op+t], src[ip:ip+t])
			ip += t
			op += t
			state = 4
			continue

		default:
			mPos = op - 1 - inst>>2 - int(src[ip])<<2
			ip++
			t = 2
			if state == 4 {
				mPos -= shortMatchBaseOffset
				t = 3
			}
		}

		// Byte order matters: an overlapping match re-reads bytes it just wrote.
		m := dst[mPos : op+t]
		out := dst[op : op+t]
		for i := range out {
			out[i] = m[i]
		}
		op += t

		state = int(src[ip-2] & 3)
		for range state {
			dst[op] = src[ip]
			op++
			ip++
		}
	}
}
