package rename

import (
	"audiokit/report"
)

// WriteMapping saves the outcome of every planned entry to the mapping CSV.
// It is written after the full pass, in both dry-run and apply mode, so the
// preview is inspectable and a completed run reflects actual outcomes.
func WriteMapping(path string, results []Result) error {
	header := []string{"old_name", "new_name", "status"}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{res.Entry.OldName, res.Entry.NewName, res.Status})
	}

	return report.WriteCSV(path, header, rows)
}
