// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basalt-tools/peek/pkg/mylog"
)

var (
	follow       bool
	noTUI        bool
	formatFlag   string
	template     string
	loggingPath  string
	loggingLevel string
	loggingStd   bool
)

var rootCmd = &cobra.Command{
	Use:   "peek <path>",
	Short: "A terminal viewer for raw and JSON log files",
	Long:  `peek streams a log file (or stdin with "-") into a scrollable, filterable, searchable terminal view.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: peek <path to log file>")
			os.Exit(1)
		}
		return nil
	},
	PreRun: onCommandStart,
	RunE:   runPeek,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep reading as the file grows, like tail -f")
	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "print entries to stdout instead of opening the interactive viewer")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "input format override: raw or json (default: by file extension, .log is raw)")
	rootCmd.Flags().StringVar(&template, "template", "", "text/template override for --no-tui output")

	rootCmd.PersistentFlags().StringVar(&loggingPath, "logging-path", "", "file to write the viewer's own diagnostics to")
	rootCmd.PersistentFlags().StringVar(&loggingLevel, "logging-level", "", "diagnostics level: TRACE DEBUG INFO WARN ERROR")
	rootCmd.PersistentFlags().BoolVar(&loggingStd, "logging-stdout", false, "mirror diagnostics to stdout")

	_ = rootCmd.RegisterFlagCompletionFunc("logging-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"raw", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func onCommandStart(cmd *cobra.Command, args []string) {
	mylog.Configure(mylog.Options{
		Stdout: loggingStd,
		Path:   loggingPath,
		Level:  loggingLevel,
	})
}

func runPeek(cmd *cobra.Command, args []string) error {
	path := args[0]
	if noTUI {
		return runDump(path)
	}
	return runTUI(path)
}
