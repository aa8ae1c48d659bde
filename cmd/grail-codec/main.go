// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command grail-codec computes checksums and decodes ADC streams on local
// or S3 files.
package main

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/codec/cmd/grail-codec/cmd"
	"v.io/x/lib/cmdline"
)

func newCmdSum() *cmdline.Command {
	var opts cmd.SumOptions
	c := &cmdline.Command{
		Name:  "sum",
		Short: "Print checksums of files",
		Long: `Sum prints "<checksum>\t<path>" for each file. Paths may be local or s3://
URLs and may contain globs as defined in https://github.com/gobwas/glob.
Files ending in .gz or .zst are decompressed first. Checksums are printed
as big-endian hex.`,
		ArgsName: "path...",
	}
	c.Flags.StringVar(&opts.Alg, "alg", "crc32", "checksum: "+strings.Join(cmd.Algorithms, ", "))
	c.Flags.BoolVar(&opts.Portable, "portable", false, "use the portable multiply backend")
	c.Flags.IntVar(&opts.Parallel, "parallel", 0, "files to process concurrently; 0 means one per CPU")
	c.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
		if len(args) == 0 {
			return env.UsageErrorf("sum: no paths given")
		}
		return cmd.Sum(context.Background(), env.Stdout, opts, args)
	})
	return c
}

func newCmdADC() *cmdline.Command {
	var opts cmd.ADCOptions
	c := &cmdline.Command{
		Name:     "adc",
		Short:    "Decode an ADC stream",
		Long:     "ADC decodes an Apple Data Compression stream into exactly -size bytes.",
		ArgsName: "path",
	}
	c.Flags.IntVar(&opts.Size, "size", 0, "decompressed size in bytes")
	c.Flags.StringVar(&opts.Out, "out", "", "output path; stdout if empty")
	c.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
		if len(args) != 1 {
			return env.UsageErrorf("adc: exactly one path required")
		}
		return cmd.ADC(context.Background(), env.Stdout, opts, args[0])
	})
	return c
}

func newCmdBackend() *cmdline.Command {
	var portable bool
	c := &cmdline.Command{
		Name:  "backend",
		Short: "Print the carry-less multiply backend",
	}
	c.Flags.BoolVar(&portable, "portable", false, "report the portable backend")
	c.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
		if len(args) != 0 {
			return errors.E(errors.Invalid, "backend takes no arguments")
		}
		return cmd.Backend(env.Stdout, portable)
	})
	return c
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "grail-codec",
		Short:    "Checksum and ADC codec tool",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdSum(),
			newCmdADC(),
			newCmdBackend(),
		},
	}
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
	cmdline.Main(newCmdRoot())
}
