// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package fletcher implements the Fletcher-16 and Fletcher-32 checksums.
//
// Fletcher-16 sums bytes modulo 255. Fletcher-32 sums little-endian 16-bit
// words modulo 65535; an odd trailing byte is padded with zero. Both start
// from zero sums, and the checksum is the second sum in the high half and
// the first sum in the low half.
package fletcher

import (
	"encoding/binary"
	"hash"
)

// Checksum sizes in bytes.
const (
	Size16 = 2
	Size32 = 4
)

const (
	mod16 = 255
	mod32 = 65535
	// Longest runs whose sums cannot overflow a uint32 before reduction.
	nmax16 = 5802
	nmax32 = 359
)

// Checksum16 returns the Fletcher-16 checksum of p.
func Checksum16(p []byte) uint16 {
	var d digest16
	d.Write(p)
	return d.Sum16()
}

// Checksum32 returns the Fletcher-32 checksum of p.
func Checksum32(p []byte) uint32 {
	var d digest32
	d.Write(p)
	return d.Sum32()
}

// Hash16 is the common interface implemented by 16-bit checksums.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

type digest16 struct {
	s1, s2 uint32
}

// New16 returns a Hash16 computing Fletcher-16.
func New16() Hash16 { return new(digest16) }

func (d *digest16) Size() int      { return Size16 }
func (d *digest16) BlockSize() int { return 1 }
func (d *digest16) Reset()         { *d = digest16{} }
func (d *digest16) Sum16() uint16  { return uint16(d.s2<<8 | d.s1) }

func (d *digest16) Write(p []byte) (int, error) {
	n := len(p)
	s1, s2 := d.s1, d.s2
	for len(p) > 0 {
		q := p
		if len(q) > nmax16 {
			q = q[:nmax16]
		}
		p = p[len(q):]
		for _, b := range q {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= mod16
		s2 %= mod16
	}
	d.s1, d.s2 = s1, s2
	return n, nil
}

func (d *digest16) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}

type digest32 struct {
	s1, s2 uint32
	// Pending low byte of a word split across writes.
	odd    byte
	hasOdd bool
}

// New32 returns a hash.Hash32 computing Fletcher-32.
func New32() hash.Hash32 { return new(digest32) }

func (d *digest32) Size() int      { return Size32 }
func (d *digest32) BlockSize() int { return 2 }
func (d *digest32) Reset()         { *d = digest32{} }

// Sum32 returns the checksum of the data written so far, padding a pending
// odd byte without consuming it.
func (d *digest32) Sum32() uint32 {
	s1, s2 := d.s1, d.s2
	if d.hasOdd {
		s1 = (s1 + uint32(d.odd)) % mod32
		s2 = (s2 + s1) % mod32
	}
	return s2<<16 | s1
}

func (d *digest32) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) == 0 {
		return 0, nil
	}
	s1, s2 := d.s1, d.s2
	if d.hasOdd {
		s1 = (s1 + (uint32(d.odd) | uint32(p[0])<<8)) % mod32
		s2 = (s2 + s1) % mod32
		d.hasOdd = false
		p = p[1:]
	}
	for len(p) >= 2 {
		q := p[:len(p)&^1]
		if len(q) > 2*nmax32 {
			q = q[:2*nmax32]
		}
		p = p[len(q):]
		for ; len(q) >= 2; q = q[2:] {
			s1 += uint32(binary.LittleEndian.Uint16(q))
			s2 += s1
		}
		s1 %= mod32
		s2 %= mod32
	}
	if len(p) == 1 {
		d.odd, d.hasOdd = p[0], true
	}
	d.s1, d.s2 = s1, s2
	return n, nil
}

func (d *digest32) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
