// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package clmul

import (
	"encoding/binary"
	"sync"

	"github.com/grailbio/base/log"
)

// Uint128 is a 128-bit value, stored as two little-endian 64-bit halves.
type Uint128 struct {
	Lo, Hi uint64
}

// Load reads a 16-byte little-endian block from p. It panics if p is
// shorter than 16 bytes.
func Load(p []byte) Uint128 {
	_ = p[15]
	return Uint128{
		Lo: binary.LittleEndian.Uint64(p),
		Hi: binary.LittleEndian.Uint64(p[8:]),
	}
}

// LoadPartial reads len(p) <= 16 bytes into the low bytes of a zero value.
func LoadPartial(p []byte) Uint128 {
	var buf [16]byte
	copy(buf[:], p)
	return Load(buf[:])
}

// Put writes x to p in little-endian order.
func (x Uint128) Put(p []byte) {
	_ = p[15]
	binary.LittleEndian.PutUint64(p, x.Lo)
	binary.LittleEndian.PutUint64(p[8:], x.Hi)
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{x.Lo ^ y.Lo, x.Hi ^ y.Hi}
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{x.Lo | y.Lo, x.Hi | y.Hi}
}

// Lsh returns x << n for n < 128. In memory order this moves bytes towards
// the end of the block.
func (x Uint128) Lsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{0, x.Lo << (n - 64)}
	}
	return Uint128{x.Lo << n, x.Hi<<n | x.Lo>>(64-n)}
}

// Rsh returns x >> n for n < 128.
func (x Uint128) Rsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{x.Hi >> (n - 64), 0}
	}
	return Uint128{x.Lo>>n | x.Hi<<(64-n), x.Hi >> n}
}

// IsZero reports whether all 128 bits are clear.
func (x Uint128) IsZero() bool {
	return x.Lo|x.Hi == 0
}

// A Backend multiplies two 64-bit polynomials over GF(2), producing the
// 127-bit product. Implementations are stateless and safe for concurrent
// use.
type Backend interface {
	// Name identifies the implementation, e.g. "portable" or "pclmulqdq".
	Name() string
	// Mul returns the carry-less product of a and b.
	Mul(a, b uint64) Uint128
}

type portable struct{}

func (portable) Name() string { return "portable" }

func (portable) Mul(a, b uint64) Uint128 {
	return mulGeneric(a, b)
}

// mulGeneric is the reference shift-and-xor multiply. Shifts by 64 yield
// zero in Go, so the i == 0 step needs no special case.
func mulGeneric(a, b uint64) Uint128 {
	var lo, hi uint64
	for i := uint(0); i < 64; i++ {
		mask := -(b >> i & 1)
		lo ^= (a << i) & mask
		hi ^= (a >> (64 - i)) & mask
	}
	return Uint128{lo, hi}
}

// Portable returns the pure Go backend.
func Portable() Backend {
	return portable{}
}

var (
	detectOnce  sync.Once
	accelerated Backend
)

// Accelerated returns the hardware-assisted backend for this CPU, if any.
// The CPU is probed on the first call only.
func Accelerated() (Backend, bool) {
	detectOnce.Do(func() {
		accelerated = detect()
		if accelerated != nil {
			log.Debug.Printf("clmul: using %s backend", accelerated.Name())
		} else {
			log.Debug.Printf("clmul: no accelerated backend, falling back to portable")
		}
	})
	return accelerated, accelerated != nil
}

// Best returns the accelerated backend when available and the portable one
// otherwise.
func Best() Backend {
	if b, ok := Accelerated(); ok {
		return b
	}
	return Portable()
}
