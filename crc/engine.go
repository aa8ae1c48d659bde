// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc

import (
	"sync"

	"github.com/grailbio/codec/clmul"
)

// Inputs shorter than these are always checksummed with the table.
const (
	minFold32 = 4
	minFold64 = 16
)

// foldConst holds the multipliers for the low and high halves of a lane.
type foldConst struct {
	lo, hi uint64
}

// CRC-32 constants: x^n mod P, bit-reflected and shifted left by one.
var (
	// Fold by 512 bits (four lanes).
	fold32x4 = foldConst{0x154442bd4, 0x1c6e41596}
	// Fold by 128 bits (one lane).
	fold32x1 = foldConst{0x1751997d0, 0x0ccaa009e}
)

const (
	k5    = 0x0ccaa009e
	k6    = 0x163cd6124
	mu32  = 0x1f7011641 // floor(x^64 / P)
	pk32  = 0x1db710641 // P
	k1x64 = 0xe05dd497ca393ae4
	k2x64 = 0xdabe95afc7875f40
	mu64  = 0x9c3e466c172963d5
	pk64  = 0x92d8af2baf0e1e85
)

var fold64x1 = foldConst{k1x64, k2x64}

// Engine computes CRC-32 and CRC-64 by folding 128-bit blocks with the
// carry-less multiply of its backend. Inputs below the folding threshold
// fall back to the table. An Engine is immutable and safe for concurrent
// use.
type Engine struct {
	b clmul.Backend
}

// NewEngine returns an engine that multiplies with b.
func NewEngine(b clmul.Backend) *Engine {
	return &Engine{b: b}
}

// Backend returns the engine's multiply backend.
func (e *Engine) Backend() clmul.Backend { return e.b }

func (e *Engine) fold(x clmul.Uint128, k *foldConst) clmul.Uint128 {
	return e.b.Mul(x.Lo, k.lo).Xor(e.b.Mul(x.Hi, k.hi))
}

// Update32 returns the result of adding p to the CRC-32 seed.
//
// Four lanes are folded in parallel, 64 bytes per round. The remaining
// whole blocks advance the lane window by one to three blocks. A final
// partial block shifts every lane down by its length; the bytes pushed out
// of lane 0 are folded into lane 3. The lanes are then combined and reduced
// to 32 bits.
func (e *Engine) Update32(seed uint32, p []byte) uint32 {
	if len(p) < minFold32 {
		return updateTable32(seed, p)
	}
	var (
		lanes [4]clmul.Uint128
		// Absorbed by the first block read.
		init = clmul.Uint128{Lo: uint64(^seed)}
	)
	block := func(off int) clmul.Uint128 {
		v := clmul.Load(p[off:]).Xor(init)
		init = clmul.Uint128{}
		return v
	}
	pos := 0
	for ; len(p)-pos >= 64; pos += 64 {
		for i := range lanes {
			lanes[i] = e.fold(lanes[i], &fold32x4).Xor(block(pos + 16*i))
		}
	}
	if k := (len(p) - pos) / 16; k > 0 {
		var next [4]clmul.Uint128
		copy(next[:], lanes[k:])
		for i := 0; i < k; i++ {
			next[4-k+i] = e.fold(lanes[i], &fold32x4).Xor(block(pos + 16*i))
		}
		lanes = next
		pos += 16 * k
	}
	if r := len(p) - pos; r > 0 {
		tail := clmul.LoadPartial(p[pos:]).Xor(init)
		s, t := uint(8*r), uint(8*(16-r))
		out := lanes[0].Lsh(t)
		for i := 0; i < 3; i++ {
			lanes[i] = lanes[i].Rsh(s).Or(lanes[i+1].Lsh(t))
		}
		lanes[3] = lanes[3].Rsh(s).Or(tail.Lsh(t)).Xor(e.fold(out, &fold32x4))
	}

	x := lanes[0]
	for _, l := range lanes[1:] {
		x = e.fold(x, &fold32x1).Xor(l)
	}
	return ^e.reduce32(x)
}

// reduce32 reduces a 128-bit remainder to 32 bits: 128 to 96, 96 to 64,
// then a Barrett step.
func (e *Engine) reduce32(x clmul.Uint128) uint32 {
	t := e.b.Mul(x.Lo, k5).Xor(x.Rsh(64))
	u := e.b.Mul(t.Lo&0xffffffff, k6).Xor(t.Rsh(32))
	q := e.b.Mul(u.Lo&0xffffffff, mu32).Lo & 0xffffffff
	r := e.b.Mul(q, pk32).Xor(u)
	return uint32(r.Lo >> 32)
}

// Update64 returns the result of adding p to the CRC-64 seed.
//
// A single accumulator is folded forward 128 bits per block. A trailing
// partial block is merged by shifting the accumulator down and folding the
// displaced bytes back in. The result is reduced to 64 bits and finished
// with a Barrett step.
func (e *Engine) Update64(seed uint64, p []byte) uint64 {
	if len(p) < minFold64 {
		return updateTable64(seed, p)
	}
	acc := clmul.Load(p).Xor(clmul.Uint128{Lo: ^seed})
	for p = p[16:]; len(p) >= 16; p = p[16:] {
		acc = e.fold(acc, &fold64x1).Xor(clmul.Load(p))
	}
	if r := len(p); r > 0 {
		s, t := uint(8*r), uint(8*(16-r))
		out := acc.Lsh(t)
		acc = acc.Rsh(s).Or(clmul.LoadPartial(p).Lsh(t)).Xor(e.fold(out, &fold64x1))
	}
	return ^e.reduce64(acc)
}

func (e *Engine) reduce64(x clmul.Uint128) uint64 {
	r := e.b.Mul(x.Lo, k2x64).Xor(x.Rsh(64))
	t1 := e.b.Mul(r.Lo, mu64)
	t2 := e.b.Mul(t1.Lo, pk64).Xor(t1.Lsh(64)).Xor(r)
	return t2.Hi
}

var (
	fastOnce sync.Once
	fast     *Engine
)

// accelerated returns the engine bound to the hardware backend, or nil.
func accelerated() *Engine {
	fastOnce.Do(func() {
		if b, ok := clmul.Accelerated(); ok {
			fast = NewEngine(b)
		}
	})
	return fast
}
