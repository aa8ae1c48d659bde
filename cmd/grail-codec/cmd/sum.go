// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"io"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/codec/clmul"
	"github.com/grailbio/codec/crc"
	"github.com/grailbio/codec/fletcher"
)

// Algorithms lists the checksums understood by Sum.
var Algorithms = []string{"crc32", "crc64", "crc16", "crc16-kermit", "adler32", "fletcher16", "fletcher32"}

// SumOptions configures Sum.
type SumOptions struct {
	// Alg is one of Algorithms.
	Alg string
	// Portable forces the pure Go multiply backend for crc32 and crc64.
	Portable bool
	// Parallel bounds the number of files checksummed concurrently. Zero
	// means runtime.NumCPU().
	Parallel int
}

func newHash(opts SumOptions) (hash.Hash, error) {
	engine := crc.NewEngine(clmul.Best())
	if opts.Portable {
		engine = crc.NewEngine(clmul.Portable())
	}
	switch opts.Alg {
	case "crc32", "":
		return engine.New32(), nil
	case "crc64":
		return engine.New64(), nil
	case "crc16":
		return crc.New16(crc.IBM), nil
	case "crc16-kermit":
		return crc.New16(crc.Kermit), nil
	case "adler32":
		return adler32.New(), nil
	case "fletcher16":
		return fletcher.New16(), nil
	case "fletcher32":
		return fletcher.New32(), nil
	}
	return nil, errors.E(errors.Invalid, fmt.Sprintf("unknown algorithm %q, want one of %v", opts.Alg, Algorithms))
}

// Sum writes "<checksum>\t<path>" for each file matched by args. Files are
// processed in parallel but reported in argument order. A file that cannot
// be read is logged and skipped; Sum then returns the first such error.
func Sum(ctx context.Context, out io.Writer, opts SumOptions, args []string) error {
	if _, err := newHash(opts); err != nil {
		return err
	}
	paths, err := expandGlobs(ctx, args)
	if err != nil {
		return err
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	var (
		sums = make([]string, len(paths))
		once errors.Once
	)
	err = traverse.Limit(parallel).Each(len(paths), func(i int) error {
		sum, err := sumFile(ctx, opts, paths[i])
		if err != nil {
			log.Error.Printf("%s: %v", paths[i], err)
			once.Set(err)
			return nil
		}
		sums[i] = sum
		return nil
	})
	if err != nil {
		return err
	}
	for i, path := range paths {
		if sums[i] == "" {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", sums[i], path); err != nil {
			return err
		}
	}
	return once.Err()
}

func sumFile(ctx context.Context, opts SumOptions, path string) (_ string, err error) {
	h, err := newHash(opts)
	if err != nil {
		return "", err
	}
	in, err := openInput(ctx, path)
	if err != nil {
		return "", errors.E(err, "sum", path)
	}
	defer func() {
		if cerr := in.Close(ctx); err == nil && cerr != nil {
			err = errors.E(cerr, "sum", path)
		}
	}()
	n, err := io.Copy(h, in)
	if err != nil {
		return "", errors.E(err, "sum", path)
	}
	log.Debug.Printf("%s: %s over %d bytes", path, opts.Alg, n)
	return hex.EncodeToString(h.Sum(nil)), nil
}
