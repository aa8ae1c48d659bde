// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package clmul provides carry-less multiplication of 64-bit words, the
// primitive behind polynomial folding in CRC computation, together with a
// small 128-bit value type for the surrounding XOR and shift arithmetic.
//
// Multiplication is exposed through the Backend interface. Portable() works
// everywhere and is implemented with shifts and XORs. On amd64 (PCLMULQDQ)
// and arm64 (PMULL) an accelerated backend is used when the CPU supports it;
// Accelerated() reports it. The CPU is probed once per process, on first
// use, and the answer is cached.
//
// Building with the purego tag disables the assembly backends.
//
// All values are in the "reflected" convention used by the common CRC
// standards: byte 0 of a loaded block is the low byte of Uint128.Lo, and the
// least significant bit of that byte carries the highest-degree coefficient.
package clmul
