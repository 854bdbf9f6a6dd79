package cmd

import (
	"github.com/spf13/cobra"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

// versionCmd print the version number of the CLI.
// Usage: `resumeai version`.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the current ResumeAI CLI version",
	Run: func(_ *cobra.Command, _ []string) {
		printer.Infof("ResumeAI CLI %s\n", AppVersion)
	},
}
