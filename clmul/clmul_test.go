// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package clmul_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/codec/clmul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortableMul(t *testing.T) {
	p := clmul.Portable()
	tests := []struct {
		a, b uint64
		want clmul.Uint128
	}{
		{0, 0, clmul.Uint128{}},
		{1, 1, clmul.Uint128{Lo: 1}},
		{3, 3, clmul.Uint128{Lo: 5}}, // (x+1)^2 = x^2+1
		{7, 3, clmul.Uint128{Lo: 9}}, // (x^2+x+1)(x+1) = x^3+1
		{1 << 63, 2, clmul.Uint128{Hi: 1}},
		{1 << 63, 1 << 63, clmul.Uint128{Hi: 1 << 62}},
		{^uint64(0), 1, clmul.Uint128{Lo: ^uint64(0)}},
		{^uint64(0), 3, clmul.Uint128{Lo: 1, Hi: 1}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, p.Mul(test.a, test.b), "%#x * %#x", test.a, test.b)
	}
}

func TestMulCommutes(t *testing.T) {
	p := clmul.Portable()
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		a, b := r.Uint64(), r.Uint64()
		require.Equal(t, p.Mul(a, b), p.Mul(b, a))
	}
}

func TestMulDistributes(t *testing.T) {
	p := clmul.Portable()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b, c := r.Uint64(), r.Uint64(), r.Uint64()
		require.Equal(t, p.Mul(a, b^c), p.Mul(a, b).Xor(p.Mul(a, c)))
	}
}

func TestBackendsAgree(t *testing.T) {
	b, ok := clmul.Accelerated()
	if !ok {
		t.Skip("no accelerated backend on this machine")
	}
	p := clmul.Portable()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		x, y := r.Uint64(), r.Uint64()
		require.Equal(t, p.Mul(x, y), b.Mul(x, y), "%s: %#x * %#x", b.Name(), x, y)
	}
}

func TestBest(t *testing.T) {
	b := clmul.Best()
	require.NotNil(t, b)
	if acc, ok := clmul.Accelerated(); ok {
		assert.Equal(t, acc.Name(), b.Name())
	} else {
		assert.Equal(t, "portable", b.Name())
	}
	// Detection is memoized.
	acc1, ok1 := clmul.Accelerated()
	acc2, ok2 := clmul.Accelerated()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, acc1, acc2)
}

func TestShifts(t *testing.T) {
	x := clmul.Uint128{Lo: 0x0807060504030201, Hi: 0x100f0e0d0c0b0a09}
	assert.Equal(t, x, x.Lsh(0))
	assert.Equal(t, x, x.Rsh(0))
	assert.Equal(t, clmul.Uint128{Lo: 0x0706050403020100, Hi: 0x0f0e0d0c0b0a0908}, x.Lsh(8))
	assert.Equal(t, clmul.Uint128{Lo: 0x0908070605040302, Hi: 0x00100f0e0d0c0b0a}, x.Rsh(8))
	assert.Equal(t, clmul.Uint128{Hi: x.Lo}, x.Lsh(64))
	assert.Equal(t, clmul.Uint128{Lo: x.Hi}, x.Rsh(64))
	assert.Equal(t, clmul.Uint128{Hi: 0x0100000000000000}, x.Lsh(120))
	assert.Equal(t, clmul.Uint128{Lo: 0x10}, x.Rsh(120))
	assert.Equal(t, clmul.Uint128{Hi: 1 << 63}, clmul.Uint128{Lo: 1}.Lsh(127))
	assert.Equal(t, clmul.Uint128{Lo: 1}, clmul.Uint128{Hi: 1 << 63}.Rsh(127))
}

func TestLoad(t *testing.T) {
	var buf [16]byte
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	x := clmul.Load(buf[:])
	assert.Equal(t, clmul.Uint128{Lo: 0x0807060504030201, Hi: 0x100f0e0d0c0b0a09}, x)

	var out [16]byte
	x.Put(out[:])
	assert.Equal(t, buf, out)

	y := clmul.LoadPartial(buf[:3])
	assert.Equal(t, clmul.Uint128{Lo: 0x030201}, y)
	assert.True(t, clmul.LoadPartial(nil).IsZero())
	assert.Panics(t, func() { clmul.Load(buf[:15]) })
}

func BenchmarkMul(b *testing.B) {
	backends := []clmul.Backend{clmul.Portable()}
	if acc, ok := clmul.Accelerated(); ok {
		backends = append(backends, acc)
	}
	for _, be := range backends {
		be := be
		b.Run(be.Name(), func(b *testing.B) {
			var acc clmul.Uint128
			x := uint64(0x9db42487)
			for i := 0; i < b.N; i++ {
				acc = acc.Xor(be.Mul(x, uint64(i)))
			}
			_ = acc
		})
	}
}
