package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	m "github.com/dmi3/freshreadme/internal/model"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"drift", &ExitError{Code: exitDrift}, exitDrift},
		{"structural", &ExitError{Code: exitStructural}, exitStructural},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: exitDrift}), exitDrift},
		{"io", fmt.Errorf("scan: %w", fmt.Errorf("%w: read a.md", m.ErrIO)), exitIO},
		{"configuration", fmt.Errorf("%w: bad tag", m.ErrConfiguration), exitConfig},
		{"cancelled", fmt.Errorf("repair: %w", context.Canceled), exitInterrupted},
		{"deadline", context.DeadlineExceeded, exitInterrupted},
		{"usage", errors.New(`unknown command "chek"`), exitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRunResult(t *testing.T) {
	assert.NoError(t, runResult(m.Summary{Outcome: m.OutcomeInSync}, nil))
	assert.Equal(t, exitDrift, exitCode(runResult(m.Summary{Outcome: m.OutcomeDrift}, nil)))
	assert.Equal(t, exitStructural, exitCode(runResult(m.Summary{Outcome: m.OutcomeStructural}, nil)))

	ioErr := fmt.Errorf("%w: disk full", m.ErrIO)
	assert.Equal(t, ioErr, runResult(m.Summary{Outcome: m.OutcomeDrift}, ioErr))
}

func TestExitError(t *testing.T) {
	silent := &ExitError{Code: exitDrift}
	assert.Equal(t, "exit status 1", silent.Error())
	assert.NoError(t, silent.Unwrap())

	wrapped := &ExitError{Code: exitIO, Err: m.ErrIO}
	assert.Equal(t, m.ErrIO.Error(), wrapped.Error())
	assert.ErrorIs(t, wrapped, m.ErrIO)
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"silent exit", &ExitError{Code: exitDrift}, ""},
		{"interrupted", fmt.Errorf("scan: %w", context.Canceled), "Interrupted.\n"},
		{"other", fmt.Errorf("%w: bad glob", m.ErrConfiguration), "Error: invalid configuration: bad glob\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetErr(&out)

			reportError(cmd, tt.err)

			assert.Equal(t, tt.want, out.String())
		})
	}
}
