/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry counters for gptify runs: token
// usage on the completion boundary and the number of format iterations
// performed. Counters degrade to no-ops if creation fails, so metrics never
// take down a run.
package metrics
