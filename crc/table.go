// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc

// Reflected generator polynomials.
const (
	poly32 = 0xedb88320
	poly64 = 0xc96c5795d7870f42
)

var (
	table32 = makeTable32(poly32)
	table64 = makeTable64(poly64)
)

func makeTable32(poly uint32) *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = c>>1 ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

func makeTable64(poly uint64) *[256]uint64 {
	t := new([256]uint64)
	for i := range t {
		c := uint64(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = c>>1 ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

func updateTable32(seed uint32, p []byte) uint32 {
	crc := ^seed
	for _, b := range p {
		crc = crc>>8 ^ table32[byte(crc)^b]
	}
	return ^crc
}

func updateTable64(seed uint64, p []byte) uint64 {
	crc := ^seed
	for _, b := range p {
		crc = crc>>8 ^ table64[byte(crc)^b]
	}
	return ^crc
}
