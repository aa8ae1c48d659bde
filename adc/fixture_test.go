// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package adc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/codec/adc"
	"github.com/grailbio/codec/crc"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	tests := []struct {
		name string
		size int
		crc  uint32
		skip string
	}{
		{"apple_rle.bin", 20960, 0x3525ef06,
			"apple_rle.bin is Apple RLE (the UDIF run-length format), not an ADC stream"},
		{"adc.bin", 262144, 0x5a5a7388, ""},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if test.skip != "" {
				t.Skip(test.skip)
			}
			src, err := os.ReadFile(filepath.Join("testdata", test.name))
			if os.IsNotExist(err) {
				t.Skipf("fixture %s not present", test.name)
			}
			require.NoError(t, err)
			dst := make([]byte, test.size)
			n, err := adc.Decode(dst, src)
			require.NoError(t, err)
			require.Equal(t, test.size, n)
			require.Equal(t, test.crc, crc.Checksum32(dst))
		})
	}
}
