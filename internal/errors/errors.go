package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/agenda/internal/logger"
)

var (
	// ErrMalformedState marks persisted data that could not be decoded into a
	// schedule. Callers recover by starting from a fresh week.
	ErrMalformedState = stderrors.New("persisted schedule is malformed")
	// ErrStorageWrite marks a failed save. The in-memory schedule stays valid.
	ErrStorageWrite = stderrors.New("failed to persist schedule")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
