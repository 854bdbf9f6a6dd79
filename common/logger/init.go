package logger

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	DefaultTimeFormat = "15:04:05.000"

	NoColor   = true
	flagDebug = "debug"
)

var (
	logBuffer bytes.Buffer

	// DebugMode flag for determining debug mode
	DebugMode = false
)

func init() {
	zerolog.TimeFieldFormat = DefaultTimeFormat

	consoleWriter := zerolog.ConsoleWriter{
		Out:        &logBuffer,
		NoColor:    NoColor,
		TimeFormat: DefaultTimeFormat,
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter))
}

// PrintLogs print all stacked log
func PrintLogs() {
	if DebugMode {
		// Extract the logs from the buffer and print them
		logs := logBuffer.String()
		if len(logs) > 0 {
			fmt.Println("\n----- Log -----")
			fmt.Println(logs)
		}
	}
}

// SetDebugMode allow particular logger/message to be printed.
// This function will extract flag --debug from command.
func SetDebugMode(cmd *cobra.Command) {
	val, err := cmd.Flags().GetBool(flagDebug)
	if err == nil {
		DebugMode = val
	}
}
