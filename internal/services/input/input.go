package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

var (
	ErrInputCanceled = eris.New("input canceled")
	ErrInvalidInput  = eris.New("invalid input")
)

// NewService creates a new input service with standard stdin/stdout.
func NewService() *Service {
	return &Service{
		Input:  nil, // Will use os.Stdin if nil
		Output: nil, // Will use os.Stdout if nil
	}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) *Service {
	return &Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		if prompt != "" {
			s.printf("%s", prompt)
		}
		if defaultValue != "" {
			s.printf(" [%s]: ", defaultValue)
		} else {
			s.printf(": ")
		}

		input, err := s.readLine()
		if err != nil {
			return "", eris.Wrap(err, "failed to read input")
		}

		input = strings.TrimSpace(input)
		if input == "" && defaultValue != "" {
			// Display the default value as if they typed it in
			s.moveCursorUp(1)
			s.moveCursorRight(len(defaultValue) + 4 + len(prompt))
			s.println(defaultValue)
			return defaultValue, nil
		}
		return input, nil
	}
}

// Confirm asks for y/n confirmation. Empty input takes the default; any answer
// other than an explicit yes counts as a no, so a stray keystroke can never
// trigger a deploy.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	input, err := s.Prompt(ctx, prompt, defaultValue)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select allows user to select from multiple options by number.
func (s *Service) Select(ctx context.Context, title, prompt string, options []string, defaultIndex int) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			s.println("")
			if title != "" {
				s.println(" " + title)
			}
			for i, option := range options {
				s.printf("%d. %s\n", i+1, option)
			}

			defaultStr := ""
			if defaultIndex >= 0 && defaultIndex < len(options) {
				defaultStr = strconv.Itoa(defaultIndex + 1)
			}

			input, err := s.Prompt(ctx, prompt, defaultStr)
			if err != nil {
				return 0, err
			}

			if input == "q" || input == "quit" {
				return -1, ErrInputCanceled
			}

			num, err := strconv.Atoi(input)
			if err != nil || num < 1 || num > len(options) {
				s.printf("Please enter a number between 1 and %d\n", len(options))
				continue
			}

			return num - 1, nil // Convert to 0-based index
		}
	}
}

// Helper methods for I/O operations

// lineReader wraps the input stream so consecutive prompts share one buffer.
type lineReader struct {
	r *bufio.Reader
}

func (s *Service) readLine() (string, error) {
	if s.reader == nil {
		input := s.Input
		if input == nil {
			input = os.Stdin
		}
		s.reader = &lineReader{r: bufio.NewReader(input)}
	}

	line, err := s.reader.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	output := s.Output
	if output == nil {
		printer.Info(fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(output, format, args...)
}

func (s *Service) println(text string) {
	output := s.Output
	if output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(output, text)
}

func (s *Service) moveCursorUp(lines int) {
	if s.Output == nil {
		printer.MoveCursorUp(lines)
	}
	// If using custom output, skip cursor movements
}

func (s *Service) moveCursorRight(chars int) {
	if s.Output == nil {
		printer.MoveCursorRight(chars)
	}
	// If using custom output, skip cursor movements
}
