/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder provides immutable instruction templates with
// {{name}} placeholders.
//
// A Prompt is parsed once, bound incrementally, and rendered with Build,
// which fails if any placeholder is still unbound. Binding returns a new
// Prompt, so a package-level template can be shared across iterations
// without synchronization.
//
// BindString substitutes a value verbatim. BindCode wraps the value in a
// markdown code fence first, so file contents read as literal source rather
// than as instructions to the model.
package promptbuilder
