// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package frame

import (
	"bytes"
	"encoding/binary"
)

// Magic opens every frame. The leading 0x89 keeps text tools from treating it as ASCII.
var Magic = [7]byte{0x89, 'L', 'Z', 'O', '1', 'X', 0x00}

// Flags describe how the payload is stored.
type Flags uint8

const (
	// FlagStored marks a payload kept raw because compression did not shrink it.
	FlagStored Flags = 1 << iota
	// FlagPayloadHash marks a header carrying an xxhash64 of the payload.
	FlagPayloadHash

	knownFlags = FlagStored | FlagPayloadHash
)

const (
	prefixSize     = len(Magic) + 1 // magic + flags
	baseHeaderSize = prefixSize + 12
	hashSize       = 8
)

// Header is the fixed part of a frame. Multi-byte fields are big endian, as in lzop.
type Header struct {
	Flags       Flags
	RawLen      uint32 // decompressed size
	PayloadLen  uint32 // bytes following the header
	RawChecksum uint32 // adler32 of the decompressed data
	PayloadHash uint64 // xxhash64 of the payload, present with FlagPayloadHash
}

// Size returns the encoded header length.
func (h Header) Size() int {
	return headerSize(h.Flags)
}

func headerSize(f Flags) int {
	if f&FlagPayloadHash != 0 {
		return baseHeaderSize + hashSize
	}

	return baseHeaderSize
}

// AppendTo appends the encoded header to b.
func (h Header) AppendTo(b []byte) []byte {
	b = append(b, Magic[:]...)
	b = append(b, byte(h.Flags))
	b = binary.BigEndian.AppendUint32(b, h.RawLen)
	b = binary.BigEndian.AppendUint32(b, h.PayloadLen)
	b = binary.BigEndian.AppendUint32(b, h.RawChecksum)
	if h.Flags&FlagPayloadHash != 0 {
		b = binary.BigEndian.AppendUint64(b, h.PayloadHash)
	}

	return b
}

// ParseHeader decodes the header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	flags, err := parsePrefix(b)
	if err != nil {
		return Header{}, err
	}

	if len(b) < headerSize(flags) {
		return Header{}, ErrTruncated
	}

	h := Header{
		Flags:       flags,
		RawLen:      binary.BigEndian.Uint32(b[prefixSize:]),
		PayloadLen:  binary.BigEndian.Uint32(b[prefixSize+4:]),
		RawChecksum: binary.BigEndian.Uint32(b[prefixSize+8:]),
	}
	if flags&FlagPayloadHash != 0 {
		h.PayloadHash = binary.BigEndian.Uint64(b[baseHeaderSize:])
	}

	return h, nil
}

// parsePrefix validates the magic and returns the flags byte.
func parsePrefix(b []byte) (Flags, error) {
	if len(b) < prefixSize {
		if bytes.HasPrefix(Magic[:], b) {
			return 0, ErrTruncated
		}

		return 0, ErrBadMagic
	}

	if !bytes.Equal(b[:len(Magic)], Magic[:]) {
		return 0, ErrBadMagic
	}

	flags := Flags(b[len(Magic)])
	if flags&^knownFlags != 0 {
		return 0, ErrUnknownFlags
	}

	return flags, nil
}
