// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/minilzo

package minilzo

// Error is the closed set of codec failures. Values mirror the liblzo result codes,
// so streams and diagnostics line up with C implementations. Compare with errors.Is.
type Error int

// Codec errors.
const (
	// ErrUnspecified is a general failure without a more specific kind.
	ErrUnspecified Error = -1
	// ErrOutOfMemory is returned when the output buffer is too small for the compressed stream.
	ErrOutOfMemory Error = -2
	// ErrNotCompressible is returned when the caller demanded a stream shorter than its input.
	ErrNotCompressible Error = -3
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun Error = -4
	// ErrOutputOverrun is returned when the decoder would write past the declared output length.
	ErrOutputOverrun Error = -5
	// ErrLookbehindOverrun is returned when a match points before the start of the output.
	ErrLookbehindOverrun Error = -6
	// ErrEOFNotFound is returned when input is exhausted without an end-of-stream marker.
	ErrEOFNotFound Error = -7
	// ErrInputNotConsumed is returned when bytes remain after the end-of-stream marker.
	ErrInputNotConsumed Error = -8
	// ErrNotYetImplemented is reserved for liblzo compatibility.
	ErrNotYetImplemented Error = -9
	// ErrInvalidArgument is returned for unusable arguments (nil options, negative lengths).
	ErrInvalidArgument Error = -10
	// ErrInvalidAlignment is reserved for liblzo compatibility.
	ErrInvalidAlignment Error = -11
	// ErrOutputNotConsumed is returned when the stream ended before the declared output length was written.
	ErrOutputNotConsumed Error = -12
	// ErrInternalError is returned when the platform self-check or an encoder invariant fails.
	ErrInternalError Error = -99
)

var errorText = map[Error]string{
	ErrUnspecified:       "error",
	ErrOutOfMemory:       "out of memory",
	ErrNotCompressible:   "not compressible",
	ErrInputOverrun:      "input overrun",
	ErrOutputOverrun:     "output overrun",
	ErrLookbehindOverrun: "lookbehind overrun",
	ErrEOFNotFound:       "EOF not found",
	ErrInputNotConsumed:  "input not consumed",
	ErrNotYetImplemented: "not yet implemented",
	ErrInvalidArgument:   "invalid argument",
	ErrInvalidAlignment:  "invalid alignment",
	ErrOutputNotConsumed: "output not consumed",
	ErrInternalError:     "internal error",
}

// Error implements the error interface.
func (e Error) Error() string {
	s, ok := errorText[e]
	if !ok {
		s = errorText[ErrUnspecified]
	}

	return "minilzo: " + s
}

// Code returns the liblzo numeric result code.
func (e Error) Code() int {
	return int(e)
}

// ErrorFromCode maps a liblzo result code to an error. Zero maps to nil and
// unknown codes map to ErrUnspecified.
func ErrorFromCode(code int) error {
	switch code {
	case 0:
		return nil
	case -1:
		return ErrUnspecified
	case -2:
		return ErrOutOfMemory
	case -3:
		return ErrNotCompressible
	case -4:
		return ErrInputOverrun
	case -5:
		return ErrOutputOverrun
	case -6:
		return ErrLookbehindOverrun
	case -7:
		return ErrEOFNotFound
	case -8:
		return ErrInputNotConsumed
	case -9:
		return ErrNotYetImplemented
	case -10:
		return ErrInvalidArgument
	case -11:
		return ErrInvalidAlignment
	case -12:
		return ErrOutputNotConsumed
	case -99:
		return ErrInternalError
	default:
		return ErrUnspecified
	}
}
