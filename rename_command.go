package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"audiokit/config"
	"audiokit/rename"
	"audiokit/scanner"
)

func newRenameCommand() *cobra.Command {
	var (
		configPath string
		inputDir   string
		prefix     string
		start      int
		pad        int
		apply      bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename audio files to a sequential prefix pattern",
		Long:  "Renames every recognized audio file in a folder to {prefix}_{index}{ext}. Without --apply this is a dry-run preview. Options may also come from a TOML config file; explicitly set flags win.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultRename()
			if configPath != "" {
				loaded, err := config.LoadRename(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.InputDir = inputDir
			}
			if flags.Changed("prefix") {
				cfg.Prefix = prefix
			}
			if flags.Changed("start") {
				cfg.StartIndex = start
			}
			if flags.Changed("pad") {
				cfg.PadWidth = pad
			}
			if flags.Changed("apply") {
				cfg.DryRun = !apply
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRename(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with renamer options")
	cmd.Flags().StringVarP(&inputDir, "input", "i", "input_audio", "Input folder containing audio files")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix for renamed files (e.g., speaker1)")
	cmd.Flags().IntVarP(&start, "start", "s", 1, "Start index for renaming")
	cmd.Flags().IntVar(&pad, "pad", 3, "Zero-pad width for the index (0 disables padding)")
	cmd.Flags().BoolVarP(&apply, "apply", "a", false, "Actually apply renaming (otherwise dry-run)")

	return cmd
}

func runRename(out io.Writer, cfg config.Rename) error {
	files, err := scanner.Scan(cfg.InputDir)
	if err != nil {
		return err
	}

	oplog, err := rename.OpenLog(rename.LogFile, out)
	if err != nil {
		return err
	}
	defer oplog.Close()

	if len(files) == 0 {
		oplog.Printf("No audio files found. Exiting.")
		return nil
	}

	mode := "APPLY"
	if cfg.DryRun {
		mode = "DRY RUN"
	}
	oplog.Printf("run %s (%s): found %d audio files in %s", uuid.New().String(), mode, len(files), cfg.InputDir)

	plan := rename.Build(cfg.InputDir, files, rename.Options{
		Prefix: cfg.Prefix,
		Start:  cfg.StartIndex,
		Pad:    cfg.PadWidth,
	})

	for _, name := range plan.Skipped {
		oplog.Printf("SKIPPED (already renamed): %s", name)
	}

	if cfg.DryRun && len(plan.Entries) > 0 {
		fmt.Fprintln(out, renderPlanTable(plan))
	}

	executor := rename.Executor{Apply: !cfg.DryRun, Log: oplog}
	results := executor.Run(plan)

	if err := rename.WriteMapping(rename.MappingFile, results); err != nil {
		return err
	}

	oplog.Printf("Renaming process completed.")
	return nil
}
