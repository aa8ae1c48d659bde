// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package adc decodes Apple Data Compression (ADC) streams, the
// run-length and back-reference scheme used in Apple disk images.
//
// A stream is a sequence of chunks, each introduced by a header byte:
//
//	1sssssss                    literal run of s+1 bytes
//	00ssssoo oooooooo           copy s+3 bytes from distance o+1
//	01ssssss oooooooo oooooooo  copy s+4 bytes from distance o+1
//
// A copy with offset 0 repeats the last byte written. Copies are applied a
// byte at a time so that a distance shorter than the length replicates a
// pattern.
package adc

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// ChunkKind identifies the three chunk encodings.
type ChunkKind int

const (
	// Plain is a literal run copied from the input.
	Plain ChunkKind = iota + 1
	// TwoByteCopy is a back-reference with a 10-bit offset.
	TwoByteCopy
	// ThreeByteCopy is a back-reference with a 16-bit offset.
	ThreeByteCopy
)

func (k ChunkKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case TwoByteCopy:
		return "two-byte copy"
	case ThreeByteCopy:
		return "three-byte copy"
	default:
		return fmt.Sprintf("ChunkKind(%d)", int(k))
	}
}

// ParseHeader decodes the chunk header byte b. It returns the chunk kind,
// the number of output bytes the chunk produces, and the total header
// length in bytes including b.
func ParseHeader(b byte) (kind ChunkKind, size, headerLen int) {
	switch {
	case b&0x80 != 0:
		return Plain, int(b&0x7f) + 1, 1
	case b&0x40 != 0:
		return ThreeByteCopy, int(b&0x3f) + 4, 3
	default:
		return TwoByteCopy, int(b&0x3f)>>2 + 3, 2
	}
}

// Decode decodes src into dst and returns the number of bytes written.
//
// Decoding stops without error before the first chunk that would not fit in
// dst, so a count smaller than the expected size means dst was too small or
// the stream is short. Decode returns an error of kind errors.Integrity,
// together with the count written so far, when a chunk is cut off by the
// end of src or when a copy refers to data before the start of dst.
func Decode(dst, src []byte) (int, error) {
	var in, out int
	for in < len(src) {
		kind, size, hlen := ParseHeader(src[in])
		if len(src)-in < hlen {
			return out, errors.E(errors.Integrity,
				fmt.Sprintf("adc: %s header at input offset %d truncated", kind, in))
		}
		var offset int
		switch kind {
		case TwoByteCopy:
			offset = int(src[in]&0x03)<<8 | int(src[in+1])
		case ThreeByteCopy:
			offset = int(src[in+1])<<8 | int(src[in+2])
		}
		if out+size > len(dst) {
			return out, nil
		}
		start := in
		in += hlen

		if kind == Plain {
			if len(src)-in < size {
				return out, errors.E(errors.Integrity,
					fmt.Sprintf("adc: literal run of %d bytes at input offset %d truncated to %d", size, start, len(src)-in))
			}
			out += copy(dst[out:out+size], src[in:in+size])
			in += size
			continue
		}
		if offset == 0 {
			if out == 0 {
				return out, errors.E(errors.Integrity,
					fmt.Sprintf("adc: repeat at input offset %d precedes any output", start))
			}
			last := dst[out-1]
			for i := 0; i < size; i++ {
				dst[out] = last
				out++
			}
			continue
		}
		from := out - offset - 1
		if from < 0 {
			return out, errors.E(errors.Integrity,
				fmt.Sprintf("adc: copy at input offset %d reaches %d bytes back with only %d written", start, offset+1, out))
		}
		for i := 0; i < size; i++ {
			dst[out] = dst[from]
			out++
			from++
		}
	}
	return out, nil
}

// DecodeAll decodes src into a new buffer of exactly size bytes. Unlike
// Decode it treats a stream that produces fewer than size bytes as an
// integrity error.
func DecodeAll(src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("adc: negative size %d", size))
	}
	dst := make([]byte, size)
	n, err := Decode(dst, src)
	if err != nil {
		return dst[:n], err
	}
	if n < size {
		return dst[:n], errors.E(errors.Integrity,
			fmt.Sprintf("adc: decoded %d bytes, want %d", n, size))
	}
	return dst, nil
}
