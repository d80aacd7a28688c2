/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package diffview

import (
	"strings"
	"testing"
)

func TestUnifiedIdentical(t *testing.T) {
	got, err := Unified("a.py", "print('hi')\n", "print('hi')\n")
	if err != nil {
		t.Fatalf("Unified() unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Unified() on identical input = %q, want empty", got)
	}
}

func TestUnifiedSingleLineChange(t *testing.T) {
	got, err := Unified("a.py", "print('hi')", "print(\"hi\")\n")
	if err != nil {
		t.Fatalf("Unified() unexpected error: %v", err)
	}

	for _, want := range []string{
		"diff --git a/a.py b/a.py\n",
		"--- a/a.py",
		"+++ b/a.py",
		"-print('hi')\n",
		"+print(\"hi\")\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Unified() output missing %q:\n%s", want, got)
		}
	}
}

func TestUnifiedKeepsContextLines(t *testing.T) {
	before := "a\nb\nc\nd\ne\n"
	after := "a\nb\nC\nd\ne\n"

	got, err := Unified("f.txt", before, after)
	if err != nil {
		t.Fatalf("Unified() unexpected error: %v", err)
	}

	for _, want := range []string{" a\n", " b\n", "-c\n", "+C\n", " d\n", " e\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Unified() output missing %q:\n%s", want, got)
		}
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	added, removed, err := Render(&sb, "a.py", "x = 1\n", "x = 2\n")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "-x = 1\n") || !strings.Contains(sb.String(), "+x = 2\n") {
		t.Errorf("Render() output missing change markers:\n%s", sb.String())
	}
	if added != 1 || removed != 1 {
		t.Errorf("Render() churn = +%d/-%d, want +1/-1", added, removed)
	}
}

func TestRenderIdenticalWritesNothing(t *testing.T) {
	var sb strings.Builder
	added, removed, err := Render(&sb, "a.py", "same\n", "same\n")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("Render() on identical input wrote %q", sb.String())
	}
	if added != 0 || removed != 0 {
		t.Errorf("Render() churn = +%d/-%d, want zero", added, removed)
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name        string
		before      string
		after       string
		wantAdded   int
		wantRemoved int
	}{{
		name:        "single line replaced",
		before:      "print('hi')\n",
		after:       "print(\"hi\")\n",
		wantAdded:   1,
		wantRemoved: 1,
	}, {
		name:        "line added",
		before:      "a\nb\n",
		after:       "a\nb\nc\n",
		wantAdded:   1,
		wantRemoved: 0,
	}, {
		name:        "line removed",
		before:      "a\nb\nc\n",
		after:       "a\nc\n",
		wantAdded:   0,
		wantRemoved: 1,
	}, {
		name:        "two separated changes",
		before:      "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\n",
		after:       "A\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nL\n",
		wantAdded:   2,
		wantRemoved: 2,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := Unified("f.txt", tt.before, tt.after)
			if err != nil {
				t.Fatalf("Unified() unexpected error: %v", err)
			}
			added, removed, err := Stats(diff)
			if err != nil {
				t.Fatalf("Stats() unexpected error: %v", err)
			}
			if added != tt.wantAdded || removed != tt.wantRemoved {
				t.Errorf("Stats() = (+%d, -%d), want (+%d, -%d)\ndiff:\n%s",
					added, removed, tt.wantAdded, tt.wantRemoved, diff)
			}
		})
	}
}

func TestStatsEmptyDiff(t *testing.T) {
	added, removed, err := Stats("")
	if err != nil {
		t.Fatalf("Stats() unexpected error: %v", err)
	}
	if added != 0 || removed != 0 {
		t.Errorf("Stats(\"\") = (+%d, -%d), want (0, 0)", added, removed)
	}
}
