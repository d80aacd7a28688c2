/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"strings"
)

// ExtractCode extracts source code from a completion that may wrap it in a
// markdown code fence. It looks for the first fenced block (language-tagged
// or bare) on its own lines and returns its contents with a trailing
// newline. A response without a complete fence is returned unchanged.
func ExtractCode(response string) string {
	if block, ok := fencedBlock(response); ok {
		return block
	}
	return response
}

// fencedBlock scans for a ``` opener line and collects content until the
// closing ``` line. The opener may carry a language tag (```python); the
// closer must be a bare fence.
func fencedBlock(response string) (string, bool) {
	lines := strings.Split(response, "\n")

	start := -1
	for i, line := range lines {
		if isFenceOpener(strings.TrimSpace(line)) {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "```" {
			body := strings.Join(lines[start+1:i], "\n")
			if body == "" {
				// Opened and closed with nothing between; the caller
				// treats an empty completion as a failure.
				return "", true
			}
			return body + "\n", true
		}
	}

	// Opener without a closer: the fence is part of the content, not a wrapper.
	return "", false
}

// isFenceOpener reports whether line opens a code fence, e.g. "```" or
// "```python". Anything after the backticks must be a bare language tag.
func isFenceOpener(line string) bool {
	if !strings.HasPrefix(line, "```") {
		return false
	}
	tag := strings.TrimPrefix(line, "```")
	if tag == "" {
		return true
	}
	for _, r := range tag {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-._", r) {
			return false
		}
	}
	return true
}
