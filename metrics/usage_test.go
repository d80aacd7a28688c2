/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"testing"
)

func TestUsageRecordsWithoutProvider(t *testing.T) {
	// Without a configured global meter provider the otel API hands back
	// no-op instruments; recording must still be safe.
	u := NewUsage("test.gptify")

	ctx := context.Background()
	u.RecordTokens(ctx, "gpt-3.5-turbo", 100, 50)
	u.RecordTokens(ctx, "claude-sonnet-4-20250514", 0, 0)
	u.RecordIteration(ctx)
}

func TestNewUsagePopulatesAllCounters(t *testing.T) {
	u := NewUsage("test.gptify")
	if u.promptTokens == nil || u.completionTokens == nil || u.iterations == nil {
		t.Error("NewUsage() left a counter nil")
	}
}

func TestSharedMeterName(t *testing.T) {
	u := NewUsage(MeterName)
	if u.promptTokens == nil || u.completionTokens == nil || u.iterations == nil {
		t.Errorf("NewUsage(%q) left a counter nil", MeterName)
	}
}
