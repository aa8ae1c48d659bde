// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fletcher_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/codec/fletcher"
	"github.com/grailbio/testutil/expect"
)

// Reference implementations that reduce after every step.
func naive16(p []byte) uint16 {
	var s1, s2 uint32
	for _, b := range p {
		s1 = (s1 + uint32(b)) % 255
		s2 = (s2 + s1) % 255
	}
	return uint16(s2<<8 | s1)
}

func naive32(p []byte) uint32 {
	if len(p)%2 == 1 {
		p = append(append([]byte{}, p...), 0)
	}
	var s1, s2 uint32
	for i := 0; i < len(p); i += 2 {
		s1 = (s1 + (uint32(p[i]) | uint32(p[i+1])<<8)) % 65535
		s2 = (s2 + s1) % 65535
	}
	return s2<<16 | s1
}

func TestCheckValues(t *testing.T) {
	tests := []struct {
		in  string
		f16 uint16
		f32 uint32
	}{
		{"", 0, 0},
		{"abcde", 0xc8f0, 0xf04fc729},
		{"abcdef", 0x2057, 0x56502d2a},
		{"abcdefgh", 0x0627, 0xebe19591},
		{"123456789", 0x1ede, 0xdf09d509},
	}
	for _, test := range tests {
		expect.EQ(t, fletcher.Checksum16([]byte(test.in)), test.f16, test.in)
		expect.EQ(t, fletcher.Checksum32([]byte(test.in)), test.f32, test.in)
	}
}

func TestLong(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for _, n := range []int{1, 717, 718, 719, 5801, 5802, 5803, 100000} {
		p := make([]byte, n)
		for i := range p {
			p[i] = 0xff
		}
		expect.EQ(t, fletcher.Checksum16(p), naive16(p), n)
		expect.EQ(t, fletcher.Checksum32(p), naive32(p), n)
		r.Read(p)
		expect.EQ(t, fletcher.Checksum16(p), naive16(p), n)
		expect.EQ(t, fletcher.Checksum32(p), naive32(p), n)
	}
}

func TestSplitWrites(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p := make([]byte, 3001)
	r.Read(p)
	want16, want32 := fletcher.Checksum16(p), fletcher.Checksum32(p)
	for _, chunk := range []int{1, 2, 3, 7, 64, 1000} {
		h16, h32 := fletcher.New16(), fletcher.New32()
		for q := p; len(q) > 0; {
			n := chunk
			if n > len(q) {
				n = len(q)
			}
			h16.Write(q[:n])
			h32.Write(q[:n])
			// Sum32 must not consume a pending odd byte.
			_ = h32.Sum32()
			q = q[n:]
		}
		expect.EQ(t, h16.Sum16(), want16, chunk)
		expect.EQ(t, h32.Sum32(), want32, chunk)
		expect.EQ(t, h32.Sum(nil), []byte{byte(want32 >> 24), byte(want32 >> 16), byte(want32 >> 8), byte(want32)})
		expect.EQ(t, h16.Sum(nil), []byte{byte(want16 >> 8), byte(want16)})
		h16.Reset()
		h32.Reset()
		expect.EQ(t, h16.Sum16(), uint16(0))
		expect.EQ(t, h32.Sum32(), uint32(0))
	}
}
