// Package main is the entry point for prettygql.
package main

import (
	"fmt"
	"os"

	"github.com/donaldgifford/prettygql/internal/runner"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := &runner.Options{}
	var showVersion bool
	exitCode := runner.ExitOK

	cmd := &cobra.Command{
		Use:   "prettygql [flags] [files...]",
		Short: "Format GraphQL document and schema files",
		Long: `prettygql formats GraphQL documents and schema files.

With no files, it reads from stdin and writes the formatted result to
stdout. With file arguments, it prints the formatted result to stdout
unless -w is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("prettygql %s (%s) %s\n", version, commit, date)
				return nil
			}
			opts.Files = args
			exitCode = runner.Run(opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "exit 1 if any file is not formatted")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "print unified diff of changes")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "write result to file instead of stdout")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print files as they are processed")
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return runner.ExitError
	}
	return exitCode
}
