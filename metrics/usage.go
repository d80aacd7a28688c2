/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName is the instrumentation scope shared by every Usage instance
// in the program, so all counters land on one meter.
const MeterName = "oppianmatt.gptify"

// Usage records token consumption and iteration counts for a run.
type Usage struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	iterations       metric.Int64Counter
}

// NewUsage creates a Usage instance on the named meter, normally
// MeterName, with the model serving as a dimension on the recorded
// metrics.
func NewUsage(meterName string) *Usage {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))
	return &Usage{
		promptTokens: counter(meter, meterName,
			"gptify.token.prompt", "The number of prompt tokens used", "{tokens}"),
		completionTokens: counter(meter, meterName,
			"gptify.token.completion", "The number of completion tokens used", "{tokens}"),
		iterations: counter(meter, meterName,
			"gptify.format.iterations", "The number of format iterations persisted", "{iterations}"),
	}
}

// counter creates an Int64Counter, degrading to a no-op with a warning when
// creation fails.
func counter(meter metric.Meter, meterName, name, desc, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name,
		metric.WithDescription(desc),
		metric.WithUnit(unit))
	if err != nil {
		slog.Warn("Failed to create counter, metric will be disabled",
			"counter", name, "error", err, "meter", meterName)
		return noop.Int64Counter{}
	}
	return c
}

// RecordTokens records prompt and completion token usage for one remote
// call, with the model as a dimension.
func (u *Usage) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	u.promptTokens.Add(ctx, promptTokens, attrs)
	u.completionTokens.Add(ctx, completionTokens, attrs)
}

// RecordIteration records one completed and persisted format iteration.
func (u *Usage) RecordIteration(ctx context.Context) {
	u.iterations.Add(ctx, 1)
}
