package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmi3/freshreadme/internal/domain"
	m "github.com/dmi3/freshreadme/internal/model"
)

// Process exit codes.
const (
	exitOK          = 0
	exitDrift       = 1
	exitStructural  = 2
	exitIO          = 3
	exitConfig      = 4
	exitInterrupted = 130
)

// ExitError carries the process exit code of a finished run. Err is nil when
// the report already told the user what went wrong.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// runResult turns the outcome of a workflow call into the command error.
func runResult(summary m.Summary, err error) error {
	if err != nil {
		return err
	}

	switch summary.Outcome {
	case m.OutcomeStructural:
		return &ExitError{Code: exitStructural}
	case m.OutcomeDrift:
		return &ExitError{Code: exitDrift}
	case m.OutcomeInSync:
	}

	return nil
}

// exitCode maps an error to the process exit code. Errors that are neither
// I/O failures nor cancellations are treated as usage errors.
func exitCode(err error) int {
	var exitErr *ExitError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case domain.IsCancellation(err):
		return exitInterrupted
	case errors.Is(err, m.ErrConfiguration):
		return exitConfig
	case errors.Is(err, m.ErrIO):
		return exitIO
	}

	return exitConfig
}

// reportError prints err unless the run output already explained it.
func reportError(cmd *cobra.Command, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	if domain.IsCancellation(err) {
		cmd.PrintErrln("Interrupted.")
		return
	}

	cmd.PrintErrln("Error:", err)
}
