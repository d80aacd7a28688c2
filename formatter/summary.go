/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package formatter

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// iterationStat captures the line churn of one persisted iteration.
type iterationStat struct {
	iteration int
	added     int
	removed   int
}

// renderSummary prints a markdown table of per-iteration changes.
func (f *formatter) renderSummary(stats []iterationStat) {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}
	table := tablewriter.NewTable(f.out,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Iteration", "Added", "Removed"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
	)

	for _, s := range stats {
		_ = table.Append([]string{
			strconv.Itoa(s.iteration),
			"+" + strconv.Itoa(s.added),
			"-" + strconv.Itoa(s.removed),
		})
	}
	_ = table.Render()
}
