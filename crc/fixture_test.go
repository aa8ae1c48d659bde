// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package crc_test

import (
	"hash/adler32"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/codec/crc"
	"github.com/stretchr/testify/require"
)

// readFixture returns testdata/name, skipping the test when the file is not
// checked out.
func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	p, err := os.ReadFile(filepath.Join("testdata", name))
	if os.IsNotExist(err) {
		t.Skipf("fixture %s not present", name)
	}
	require.NoError(t, err)
	return p
}

func TestRandomFixture(t *testing.T) {
	p := readFixture(t, "random")
	require.Len(t, p, 1<<20)
	require.Equal(t, uint32(0x54686e2b), crc.Checksum32(p))
	require.Equal(t, uint16(0x6d2d), crc.Checksum16(crc.IBM, p))
	require.Equal(t, uint32(0x86d12837), adler32.Checksum(p))
	for _, e := range engines() {
		require.Equal(t, uint32(0x54686e2b), e.Update32(0, p), e.Backend().Name())
	}
}
