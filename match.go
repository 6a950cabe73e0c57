// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

import "encoding/binary"

// dictIndex hashes the little-endian 32-bit word at the probe position into a
// scratch table slot.
func dictIndex(dv uint32) uint32 {
	return (dv * dictMul) >> (32 - dictBits)
}

// findMatch probes the scratch table for the bytes at ip and records ip as the
// newest occupant of the slot. The table stores offsets relative to base, so a
// zeroed slot points at the chunk start. It returns the backward distance and
// the match length, or (0, 0) when the candidate does not share 4 bytes.
func (c *Compressor) findMatch(src []byte, base, ip, limit int) (dist, length int) {
	dv := binary.LittleEndian.Uint32(src[ip:])
	idx := dictIndex(dv)

	mPos := base + int(c.dict[idx])
	c.dict[idx] = uint16(ip - base) //nolint:gosec // G115: chunk offsets are < chunkSize

	if dv != binary.LittleEndian.Uint32(src[mPos:]) {
		return 0, 0
	}

	return ip - mPos, matchLength(src, mPos, ip, limit)
}

// matchLength extends a 4-byte match forward until the bytes differ or ip+length
// reaches limit.
func matchLength(src []byte, mPos, ip, limit int) int {
	n := minMatchLen
	for src[ip+n] == src[mPos+n] {
		n++
		if ip+n >= limit {
			break
		}
	}

	return n
}
