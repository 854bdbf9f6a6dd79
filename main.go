package main

import (
	"github.com/resumeai-labs/resumeai-cli/cmd"
	_ "github.com/resumeai-labs/resumeai-cli/common/logger"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0"
var AppVersion string

func init() {
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	cmd.AppVersion = AppVersion
}

func main() {
	cmd.Execute()
}
