// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package cmd implements the grail-codec subcommands.
package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/gobwas/glob"
	"github.com/gobwas/glob/syntax"
	"github.com/gobwas/glob/syntax/ast"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/must"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// parseGlob returns the non-glob prefix of str and whether str contains a
// glob metacharacter. The prefix ends at the last path separator before the
// first metacharacter: parseGlob("foo/bar/baz*/*.bin") returns
// ("foo/bar/", true).
func parseGlob(str string) (string, bool) {
	node, err := syntax.Parse(str)
	must.Nil(err, str)
	must.Truef(node.Kind == ast.KindPattern && len(node.Children) > 0, "%s: unexpected glob %v", str, node)
	if node.Children[0].Kind != ast.KindText {
		return "", true
	}
	if len(node.Children) == 1 {
		return str, false
	}
	prefix := node.Children[0].Value.(ast.Text).Text
	if i := strings.LastIndexByte(prefix, '/'); i > 0 {
		prefix = prefix[:i+1]
	}
	return prefix, true
}

// expandGlob expands str into the paths it matches. A string without
// metacharacters, or one that matches nothing, expands to itself so that
// opening it reports a sensible error.
func expandGlob(ctx context.Context, str string) ([]string, error) {
	prefix, ok := parseGlob(str)
	if !ok {
		return []string{str}, nil
	}
	m, err := glob.Compile(str)
	if err != nil {
		return nil, errors.E(errors.Invalid, err, "glob", str)
	}
	suffix := strings.TrimSuffix(str[len(prefix):], "/")
	recursive := strings.Contains(suffix, "/") || strings.Contains(suffix, "**")

	var matches []string
	lister := file.List(ctx, prefix, recursive)
	for lister.Scan() {
		if !lister.IsDir() && m.Match(lister.Path()) {
			matches = append(matches, lister.Path())
		}
	}
	if err := lister.Err(); err != nil {
		return nil, errors.E(err, "list", prefix)
	}
	if len(matches) == 0 {
		return []string{str}, nil
	}
	return matches, nil
}

func expandGlobs(ctx context.Context, patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := expandGlob(ctx, pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// input is an opened file, transparently decompressed when its name ends
// in .gz or .zst.
type input struct {
	io.Reader
	f     file.File
	close func()
}

func openInput(ctx context.Context, path string) (*input, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	in := &input{Reader: f.Reader(ctx), f: f, close: func() {}}
	switch {
	case strings.HasSuffix(path, ".gz"):
		r, err := gzip.NewReader(in.Reader)
		if err != nil {
			_ = f.Close(ctx)
			return nil, errors.E(errors.Invalid, err, "gzip", path)
		}
		in.Reader, in.close = r, func() { _ = r.Close() }
	case strings.HasSuffix(path, ".zst"):
		r, err := zstd.NewReader(in.Reader)
		if err != nil {
			_ = f.Close(ctx)
			return nil, errors.E(errors.Invalid, err, "zstd", path)
		}
		in.Reader, in.close = r, r.Close
	}
	return in, nil
}

// Close releases the decompressor and closes the underlying file.
func (in *input) Close(ctx context.Context) error {
	in.close()
	return in.f.Close(ctx)
}

// readAll returns the (decompressed) contents of path.
func readAll(ctx context.Context, path string) (_ []byte, err error) {
	in, err := openInput(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); err == nil {
			err = cerr
		}
	}()
	return io.ReadAll(in)
}
