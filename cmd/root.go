package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/resumeai-labs/resumeai-cli/common/logger"
	"github.com/resumeai-labs/resumeai-cli/common/printer"
	"github.com/resumeai-labs/resumeai-cli/tea/style"
)

// AppVersion is overridden by main via ldflags.
var AppVersion = "dev"

func init() {
	// Enable case-insensitive commands
	cobra.EnableCaseInsensitive = true

	rootCmd.PersistentFlags().Bool("debug", false, "Run in debug mode")

	rootCmd.AddCommand(deployCmd, doctorCmd, versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resumeai",
	Short: "Publish ResumeAI Helper to a hosting platform",
	Long:  style.CLIHeader("ResumeAI CLI", "Publish ResumeAI Helper to a hosting platform"),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetDebugMode(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer.Errorln(err.Error())
		logger.Errors(err)
		logger.PrintLogs()
		os.Exit(1)
	}
	logger.PrintLogs()
}
