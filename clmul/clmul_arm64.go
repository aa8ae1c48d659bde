// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build arm64 && !purego

package clmul

import "golang.org/x/sys/cpu"

//go:noescape
func mulPMULL(a, b uint64) (lo, hi uint64)

type pmull struct{}

func (pmull) Name() string { return "pmull" }

func (pmull) Mul(a, b uint64) Uint128 {
	lo, hi := mulPMULL(a, b)
	return Uint128{lo, hi}
}

func detect() Backend {
	if cpu.ARM64.HasPMULL {
		return pmull{}
	}
	return nil
}
