/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package formatter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/oppianmatt/gptify/completion"
	"github.com/oppianmatt/gptify/diffview"
	"github.com/oppianmatt/gptify/metrics"
	"github.com/oppianmatt/gptify/result"
)

// separator frames each iteration's diff on the console.
const separator = "====================================="

// ErrEmptyCompletion is returned when the service's response contains no
// code to write back.
var ErrEmptyCompletion = errors.New("service returned an empty completion")

// Interface runs the iterative reformatting loop over a single file.
type Interface interface {
	// Run performs iterations format cycles over the file at path.
	Run(ctx context.Context, path string, iterations int) error
}

// formatter provides the private implementation.
type formatter struct {
	svc     completion.Interface
	out     io.Writer
	summary bool
	usage   *metrics.Usage
}

// New creates a formatter backed by the given completion service.
func New(svc completion.Interface, opts ...Option) (Interface, error) {
	if svc == nil {
		return nil, errors.New("completion service cannot be nil")
	}

	f := &formatter{
		svc:   svc,
		out:   os.Stdout,
		usage: metrics.NewUsage(metrics.MeterName),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return f, nil
}

// Run implements Interface. The loop carries the current text as an
// accumulator: read the file once, then per iteration submit, diff against
// the previous text, persist, and repeat.
func (f *formatter) Run(ctx context.Context, path string, iterations int) error {
	log := clog.FromContext(ctx)

	if iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", iterations)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	perm := filePerm(path)
	source := string(data)

	fmt.Fprintf(f.out, "Formatting %s %d times...\n", path, iterations)

	stats := make([]iterationStat, 0, iterations)
	for i := 1; i <= iterations; i++ {
		reformatted, err := f.formatOnce(ctx, source)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}

		fmt.Fprintln(f.out, separator)
		fmt.Fprintf(f.out, "Iteration: %d\n", i)

		added, removed, err := diffview.Render(f.out, path, source, reformatted)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}

		if err := os.WriteFile(path, []byte(reformatted), perm); err != nil {
			return fmt.Errorf("iteration %d: writing %s: %w", i, path, err)
		}

		f.usage.RecordIteration(ctx)
		log.With("iteration", i).
			With("added", added).
			With("removed", removed).
			Info("Persisted reformatted source")

		source = reformatted
		stats = append(stats, iterationStat{iteration: i, added: added, removed: removed})
	}

	if f.summary && len(stats) > 0 {
		f.renderSummary(stats)
	}

	fmt.Fprintf(f.out, "Formatted %s.\n", path)
	return nil
}

// formatOnce performs the remote call for one iteration and extracts the
// replacement source from the completion.
func (f *formatter) formatOnce(ctx context.Context, source string) (string, error) {
	bound, err := cleanCodePrompt.BindCode("source", source)
	if err != nil {
		return "", fmt.Errorf("binding source: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	text, err := f.svc.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	code := result.ExtractCode(text)
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCompletion
	}
	return code, nil
}

// filePerm returns the file's current permissions so rewrites preserve
// them, falling back to a plain read/write mode.
func filePerm(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
