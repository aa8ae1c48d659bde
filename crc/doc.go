// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package crc computes reflected CRC-32 (IEEE), CRC-64 (ECMA-182, as used
// by XZ) and CRC-16 checksums.
//
// CRC-32 and CRC-64 have two implementations that always agree: a
// classical byte-at-a-time table and a folding engine that consumes 16-byte
// blocks with carry-less multiplication. Update32 and Update64 use the
// folding engine when the CPU has a carry-less multiply instruction and the
// input is long enough, and the table otherwise. An Engine can be bound to
// any clmul.Backend to run the folding path explicitly.
//
// Seeds are previously returned checksums: Update32(Update32(0, a), b)
// equals Checksum32 of a followed by b. The same holds for CRC-64 and
// CRC-16.
//
// All functions are safe for concurrent use; tables and fold constants are
// immutable after package initialization.
package crc
