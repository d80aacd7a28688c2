/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package formatter

import (
	"errors"
	"io"
)

// Option is a functional option for configuring the formatter.
type Option func(*formatter) error

// WithOutput directs console output (banners, diffs, the summary table) to
// w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(f *formatter) error {
		if w == nil {
			return errors.New("output writer cannot be nil")
		}
		f.out = w
		return nil
	}
}

// WithSummary enables a per-iteration change summary table after the loop.
func WithSummary() Option {
	return func(f *formatter) error {
		f.summary = true
		return nil
	}
}
