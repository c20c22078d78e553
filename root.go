package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "audiokit",
		Short:         "Batch utilities for folders of audio files",
		Long:          "audiokit inventories a folder of audio files into a CSV report and renames files to a sequential pattern with an optional dry-run preview.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newRenameCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
