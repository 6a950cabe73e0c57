// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

const (
	adlerBase = 65521 // largest prime below 2^16
	adlerNMax = 5552  // largest n with 255n(n+1)/2 + (n+1)(base-1) <= 2^32-1
)

// Adler32 continues an adler32 checksum from seed over buf. A fresh checksum
// starts from seed 1. The low 16 bits hold the byte sum, the high 16 bits the
// sum of sums, both modulo 65521.
func Adler32(seed uint32, buf []byte) uint32 {
	a := seed & 0xffff
	b := seed >> 16

	for len(buf) > 0 {
		n := min(len(buf), adlerNMax)
		for _, c := range buf[:n] {
			a += uint32(c)
			b += a
		}

		a %= adlerBase
		b %= adlerBase
		buf = buf[n:]
	}

	return b<<16 | a
}

// Checksum returns the adler32 checksum of buf with the conventional seed 1.
func Checksum(buf []byte) uint32 {
	return Adler32(1, buf)
}
