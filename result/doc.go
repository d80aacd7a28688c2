/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package result extracts usable source code from model completions.
//
// Completion services are asked to return just the reformatted source, but
// in practice they often wrap it in a markdown code fence and sometimes
// surround the fence with prose. ExtractCode recovers the code in either
// case and passes unfenced responses through untouched, so a completion
// that echoes its input round-trips byte for byte.
package result
