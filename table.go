package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"audiokit/rename"
)

// renderPlanTable renders a dry-run plan as a table for the preview output.
func renderPlanTable(plan rename.Plan) string {
	tw := table.NewWriter()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	tw.AppendHeader(table.Row{"#", "old name", "new name", "status"})
	for _, entry := range plan.Entries {
		status := "ok"
		if entry.Collision {
			status = "collision"
		}
		tw.AppendRow(table.Row{entry.Index, entry.OldName, entry.NewName, status})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
