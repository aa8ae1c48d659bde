// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/codec/adc"
	"github.com/grailbio/codec/crc"
)

// ADCOptions configures ADC.
type ADCOptions struct {
	// Size is the expected decompressed size in bytes.
	Size int
	// Out is the destination path. If empty, the output is written to the
	// writer passed to ADC.
	Out string
}

// ADC decodes the ADC stream at path. It fails unless exactly opts.Size
// bytes are produced.
func ADC(ctx context.Context, out io.Writer, opts ADCOptions, path string) (err error) {
	if opts.Size <= 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("adc: -size must be positive, got %d", opts.Size))
	}
	src, err := readAll(ctx, path)
	if err != nil {
		return errors.E(err, "adc", path)
	}
	dst, err := adc.DecodeAll(src, opts.Size)
	if err != nil {
		return errors.E(err, "adc", path)
	}
	log.Printf("%s: decoded %d bytes into %d, crc32 %08x", path, len(src), len(dst), crc.Checksum32(dst))

	if opts.Out == "" {
		_, err = out.Write(dst)
		return err
	}
	f, err := file.Create(ctx, opts.Out)
	if err != nil {
		return errors.E(err, "adc", opts.Out)
	}
	defer file.CloseAndReport(ctx, f, &err)
	if _, err = f.Writer(ctx).Write(dst); err != nil {
		return errors.E(err, "adc", opts.Out)
	}
	return nil
}
