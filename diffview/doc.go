/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package diffview renders the change between two versions of a file's text
// as a unified diff, and reads summary statistics back out of one.
//
// Rendering is delegated to pmezard/go-difflib, the Go port of Python's
// difflib, with git-style a/ and b/ file headers and three lines of context.
// Stats parses a rendered diff with waigani/diffparser to count added and
// removed lines.
package diffview
