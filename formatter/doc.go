/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package formatter runs the iterative reformatting loop.
//
// Each iteration submits the file's current text, wrapped in a fixed
// clean-code instruction, to the completion service, prints a unified diff
// against the previous text, and writes the result back to the file so the
// next iteration starts from it. Iterations form a strict fold: the loop is
// sequential because every input is the previous output.
//
// Any error halts the run immediately. The file is only ever overwritten
// after a completion has been accepted, so a failure at iteration k leaves
// the result of iteration k-1 on disk.
package formatter
