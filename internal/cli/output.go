package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/foodorders/internal/cart"
	"github.com/roach88/foodorders/internal/ledger"
	"github.com/roach88/foodorders/internal/menu"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Storage or runtime failure
	ExitCommandError = 2 // Bad input: unknown item, blank name, empty order, bad flags
)

// Error codes reported in JSON error responses.
const (
	ErrCodeNotFound   = "E002" // Unknown menu item or order
	ErrCodeValidation = "E003" // Blank customer name or empty order
	ErrCodeStorage    = "E004" // Database error
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps a core error to its exit code and JSON error code.
func classify(err error) (exitCode int, errCode string) {
	switch {
	case errors.Is(err, menu.ErrNotFound), errors.Is(err, ledger.ErrOrderNotFound):
		return ExitCommandError, ErrCodeNotFound
	case errors.Is(err, cart.ErrValidation):
		return ExitCommandError, ErrCodeValidation
	default:
		return ExitFailure, ErrCodeStorage
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E002", "E003", etc.
	Message string `json:"message"` // human-readable message
}

// Success outputs data in JSON mode, or text in text mode.
func (f *OutputFormatter) Success(data any, text string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, text)
	return nil
}

// Fail reports err in the configured format and returns the ExitError the
// command should return.
func (f *OutputFormatter) Fail(message string, err error) error {
	exitCode, errCode := classify(err)
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: errCode, Message: err.Error()},
		})
	}
	return WrapExitError(exitCode, message, err)
}
