// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc

import (
	"hash"
)

// Hash16 is the common interface implemented by 16-bit checksums.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

type digest16 struct {
	tab *Table16
	crc uint16
}

// New16 returns a Hash16 computing the CRC-16 defined by tab.
func New16(tab *Table16) Hash16 { return &digest16{tab: tab} }

func (d *digest16) Size() int      { return Size16 }
func (d *digest16) BlockSize() int { return 1 }
func (d *digest16) Reset()         { d.crc = 0 }
func (d *digest16) Sum16() uint16  { return d.crc }

func (d *digest16) Write(p []byte) (int, error) {
	d.crc = Update16(d.tab, d.crc, p)
	return len(p), nil
}

func (d *digest16) Sum(in []byte) []byte {
	return append(in, byte(d.crc>>8), byte(d.crc))
}

type digest32 struct {
	e   *Engine
	crc uint32
}

// New32 returns a hash.Hash32 computing the CRC-32 checksum with the
// fastest available implementation.
func New32() hash.Hash32 { return &digest32{} }

// New32 returns a hash.Hash32 computing the CRC-32 checksum with e.
func (e *Engine) New32() hash.Hash32 { return &digest32{e: e} }

func (d *digest32) Size() int      { return Size32 }
func (d *digest32) BlockSize() int { return 1 }
func (d *digest32) Reset()         { d.crc = 0 }
func (d *digest32) Sum32() uint32  { return d.crc }

func (d *digest32) Write(p []byte) (int, error) {
	if d.e != nil {
		d.crc = d.e.Update32(d.crc, p)
	} else {
		d.crc = Update32(d.crc, p)
	}
	return len(p), nil
}

func (d *digest32) Sum(in []byte) []byte {
	s := d.crc
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

type digest64 struct {
	e   *Engine
	crc uint64
}

// New64 returns a hash.Hash64 computing the CRC-64 checksum with the
// fastest available implementation.
func New64() hash.Hash64 { return &digest64{} }

// New64 returns a hash.Hash64 computing the CRC-64 checksum with e.
func (e *Engine) New64() hash.Hash64 { return &digest64{e: e} }

func (d *digest64) Size() int      { return Size64 }
func (d *digest64) BlockSize() int { return 1 }
func (d *digest64) Reset()         { d.crc = 0 }
func (d *digest64) Sum64() uint64  { return d.crc }

func (d *digest64) Write(p []byte) (int, error) {
	if d.e != nil {
		d.crc = d.e.Update64(d.crc, p)
	} else {
		d.crc = Update64(d.crc, p)
	}
	return len(p), nil
}

func (d *digest64) Sum(in []byte) []byte {
	s := d.crc
	return append(in,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
