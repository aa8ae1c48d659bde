// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc

// Checksum sizes in bytes.
const (
	Size16 = 2
	Size32 = 4
	Size64 = 8
)

// Update32 returns the result of adding p to the CRC-32 seed.
func Update32(seed uint32, p []byte) uint32 {
	if len(p) >= minFold32 {
		if e := accelerated(); e != nil {
			return e.Update32(seed, p)
		}
	}
	return updateTable32(seed, p)
}

// Checksum32 returns the CRC-32 of p.
func Checksum32(p []byte) uint32 { return Update32(0, p) }

// Update64 returns the result of adding p to the CRC-64 seed.
func Update64(seed uint64, p []byte) uint64 {
	if len(p) >= minFold64 {
		if e := accelerated(); e != nil {
			return e.Update64(seed, p)
		}
	}
	return updateTable64(seed, p)
}

// Checksum64 returns the CRC-64 of p.
func Checksum64(p []byte) uint64 { return Update64(0, p) }
