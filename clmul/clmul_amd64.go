// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !purego

package clmul

import "golang.org/x/sys/cpu"

// *** the following function is defined in clmul_amd64.s

//go:noescape
func mulPCLMUL(a, b uint64) (lo, hi uint64)

type pclmul struct{}

func (pclmul) Name() string { return "pclmulqdq" }

func (pclmul) Mul(a, b uint64) Uint128 {
	lo, hi := mulPCLMUL(a, b)
	return Uint128{lo, hi}
}

func detect() Backend {
	if cpu.X86.HasPCLMULQDQ {
		return pclmul{}
	}
	return nil
}
