// Package cli provides the Cobra command structure for gomdoc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdoc",
		Short: "Documentation from source comments and Markdown files",
		Long: `gomdoc builds a documentation set from @keyword doc comments embedded in
source files and from plain Markdown documents.

Modules, classes, functions and examples are collected from every input and
written as a static HTML site styled with W3.CSS or as a single Markdown file.
Problems in the inputs are reported as warnings and never stop a build.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newSlugCommand())
	rootCmd.AddCommand(newGuideCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
