// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/grailbio/codec/clmul"
)

// Backend reports the carry-less multiply backend the checksums use.
func Backend(out io.Writer, portable bool) error {
	b := clmul.Best()
	if portable {
		b = clmul.Portable()
	}
	_, accelerated := clmul.Accelerated()
	_, err := fmt.Fprintf(out, "%s\taccelerated=%v\n", b.Name(), accelerated)
	return err
}
