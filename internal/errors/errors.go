package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/onetake/internal/logger"
)

// UserFacing is implemented by errors that carry a message meant for the
// person at the keyboard rather than for the log.
type UserFacing interface {
	error
	UserMessage() string
}

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

// Message returns the text to show on screen for err. The first UserFacing
// error in the chain wins; anything else falls back to Format.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var uf UserFacing
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	return Format(err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
