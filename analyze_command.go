package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"audiokit/metadata"
	"audiokit/report"
	"audiokit/scanner"
	"audiokit/types"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		inputDir   string
		reportFile string
		withTags   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Inventory a folder of audio files into a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), inputDir, reportFile, withTags)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input_dir", "input_audio", "Directory containing audio files to analyze")
	cmd.Flags().StringVar(&reportFile, "report_file", "audio_report.csv", "Output CSV report file")
	cmd.Flags().BoolVar(&withTags, "tags", false, "Include embedded tag metadata columns in the report")

	return cmd
}

func runAnalyze(out io.Writer, inputDir, reportFile string, withTags bool) error {
	fmt.Fprintf(out, "Scanning audio files in: %s\n", inputDir)

	files, err := scanner.Scan(inputDir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No audio files found.")
		return nil
	}

	entries := make([]types.AudioMetadata, 0, len(files))
	for _, file := range files {
		meta, err := metadata.Extract(file)
		if err != nil {
			// Corrupt or unreadable wav: keep the row without a
			// duration and move on.
			if errors.Is(err, metadata.ErrCorruptAudio) {
				log.Printf("Could not read duration for %s: %v", file.Name, err)
			} else {
				log.Printf("Could not read %s: %v", file.Name, err)
			}
		}
		if withTags {
			meta.Tags = metadata.ReadTags(file.Path)
		}
		entries = append(entries, meta)
	}

	if err := report.Write(reportFile, entries, withTags); err != nil {
		return err
	}

	report.WriteSummary(out, report.Summarize(entries))
	fmt.Fprintf(out, "\nDetailed report saved to: %s\n", reportFile)

	return nil
}
