/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffview

import (
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/waigani/diffparser"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Unified returns the unified diff between two versions of the file at
// path, with git-style headers. Identical versions produce an empty string.
func Unified(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	body, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("computing unified diff: %w", err)
	}
	if body == "" {
		return "", nil
	}

	// The diff header line keeps the output parseable by standard diff
	// tooling, including the parser behind Stats.
	return fmt.Sprintf("diff --git a/%s b/%s\n%s", path, path, body), nil
}

// Render writes the unified diff between two versions of the file at path
// to w and returns the line churn. Nothing is written when the versions
// are identical.
func Render(w io.Writer, path, before, after string) (added, removed int, err error) {
	text, err := Unified(path, before, after)
	if err != nil {
		return 0, 0, err
	}
	if text == "" {
		return 0, 0, nil
	}
	if _, err := io.WriteString(w, text); err != nil {
		return 0, 0, fmt.Errorf("writing diff: %w", err)
	}
	return Stats(text)
}

// Stats counts the added and removed lines in a rendered unified diff.
// An empty diff counts as no changes.
func Stats(diff string) (added, removed int, err error) {
	if diff == "" {
		return 0, 0, nil
	}

	parsed, err := diffparser.Parse(diff)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing diff: %w", err)
	}

	for _, file := range parsed.Files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.NewRange.Lines {
				if line.Mode == diffparser.ADDED {
					added++
				}
			}
			for _, line := range hunk.OrigRange.Lines {
				if line.Mode == diffparser.REMOVED {
					removed++
				}
			}
		}
	}
	return added, removed, nil
}
