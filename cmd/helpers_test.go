package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dmi3/freshreadme/internal/domain"
)

// executeRoot runs sub under a fresh root command with logs kept out of the
// working directory.
func executeRoot(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--"+logFileFlagName, filepath.Join(t.TempDir(), "test.log")))

	err := cmd.Execute()

	return out.String(), err
}

func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}
