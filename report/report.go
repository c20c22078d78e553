package report

import (
	"fmt"
	"io"
	"math"

	"audiokit/types"
)

// SizeKB converts a byte count to kilobytes rounded to two decimal places.
func SizeKB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/1024*100) / 100
}

// FormatDuration renders a duration column value: seconds with two decimals,
// or "n/a" when no duration could be computed.
func FormatDuration(durationSec *float64) string {
	if durationSec == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *durationSec)
}

// Write saves the detailed inventory to a CSV file. With tags enabled the
// report carries three extra columns for embedded tag metadata.
func Write(path string, entries []types.AudioMetadata, withTags bool) error {
	header := []string{"file_name", "extension", "size_kb", "duration_seconds"}
	if withTags {
		header = append(header, "title", "artist", "album")
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		row := []string{
			entry.File.Name,
			entry.File.Ext,
			fmt.Sprintf("%.2f", SizeKB(entry.File.Size)),
			FormatDuration(entry.DurationSec),
		}
		if withTags {
			var title, artist, album string
			if entry.Tags != nil {
				title = entry.Tags.Title
				artist = entry.Tags.Artist
				album = entry.Tags.Album
			}
			row = append(row, title, artist, album)
		}
		rows = append(rows, row)
	}

	return WriteCSV(path, header, rows)
}

// Summary aggregates the inventory totals printed after a run.
type Summary struct {
	TotalFiles  int
	TotalSizeKB float64
	WavSeconds  float64
}

// Summarize computes totals over the collected entries. Only entries with a
// computed duration contribute to WavSeconds.
func Summarize(entries []types.AudioMetadata) Summary {
	var s Summary
	s.TotalFiles = len(entries)
	for _, entry := range entries {
		s.TotalSizeKB += SizeKB(entry.File.Size)
		if entry.DurationSec != nil {
			s.WavSeconds += *entry.DurationSec
		}
	}
	return s
}

// WriteSummary prints the human-readable summary block.
func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "\n--- AUDIO REPORT SUMMARY ---")
	fmt.Fprintf(w, "Total audio files: %d\n", s.TotalFiles)
	fmt.Fprintf(w, "Total size: %.2f KB\n", s.TotalSizeKB)

	if s.WavSeconds > 0 {
		fmt.Fprintf(w, "Total duration (wav only): %.2f seconds\n", s.WavSeconds)
		fmt.Fprintf(w, "Total duration (minutes): %.2f minutes\n", s.WavSeconds/60)
	} else {
		fmt.Fprintln(w, "No valid wav durations calculated.")
	}
}
