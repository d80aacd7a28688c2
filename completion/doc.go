/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package completion is the boundary to the hosted completion service.
//
// The formatter only sees Interface: submit one prompt, get back one text
// completion or an error. New selects the concrete provider from the model
// name, the way one would pick an SDK by hand:
//
//   - gpt-* models use OpenAI's chat completions API
//   - claude-* models use Anthropic's Messages API
//   - gemini-* models use Google's Generative AI SDK
//
// Construction fails before any network traffic when the selected provider
// has no API key configured. A completion that the model truncated for
// running out of output tokens, or that carries no text at all, is an error
// rather than something to write back to disk.
//
// There is no retry: the service is non-deterministic, so replaying a
// failed request would not converge on the result the caller was owed.
package completion
