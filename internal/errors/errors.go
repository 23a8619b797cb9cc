package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/validation"
)

const (
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitCode maps an error to a process exit code. Events rejected at the
// engine boundary exit with ExitInvalidInput.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, validation.ErrInvalidInterval) || stderrors.Is(err, validation.ErrInvalidTime) {
		return ExitInvalidInput
	}
	return ExitFailure
}

// Fatal logs an error and exits the program with the code ExitCode picks
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(ExitFailure)
}
