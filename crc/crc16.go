// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc

// Table16 is a 256-entry table for a reflected 16-bit polynomial.
type Table16 [256]uint16

// Predefined CRC-16 tables. Both variants start from zero and apply no
// final xor.
var (
	// IBM is CRC-16/ARC, polynomial 0x8005 reflected.
	IBM = MakeTable16(0xa001)
	// Kermit is CRC-16/KERMIT (CCITT), polynomial 0x1021 reflected.
	Kermit = MakeTable16(0x8408)
)

// MakeTable16 builds the table for the given reflected polynomial.
func MakeTable16(poly uint16) *Table16 {
	t := new(Table16)
	for i := range t {
		c := uint16(i)
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

// Update16 returns the result of adding p to the checksum seed.
func Update16(tab *Table16, seed uint16, p []byte) uint16 {
	crc := seed
	for _, b := range p {
		crc = crc>>8 ^ tab[byte(crc)^b]
	}
	return crc
}

// Checksum16 returns the CRC-16 of p using tab.
func Checksum16(tab *Table16, p []byte) uint16 {
	return Update16(tab, 0, p)
}
