package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	// Test binaries always carry build info.
	assert.Contains(t, out.String(), "freshreadme version")
	assert.Contains(t, out.String(), "go version")
}

func TestNewBuildVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want buildVersion
	}{
		{
			name: "release",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Version: "v1.2.0"},
			},
			want: buildVersion{Version: "v1.2.0", GoVersion: "go1.25.1"},
		},
		{
			name: "local build with vcs stamp",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "4f1c2d9"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "GOOS", Value: "linux"},
				},
			},
			want: buildVersion{Version: unknownVersion, Revision: "4f1c2d9", Modified: true, GoVersion: "go1.25.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newBuildVersion(tt.info))
		})
	}
}

func TestPrintBuildVersion(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	printBuildVersion(cmd, buildVersion{Version: "v0.3.0", Revision: "abc123", Modified: true, GoVersion: "go1.25.1"})

	assert.Contains(t, out.String(), "freshreadme version\t v0.3.0")
	assert.Contains(t, out.String(), "abc123 (modified)")
	assert.Contains(t, out.String(), "go1.25.1")

	out.Reset()
	printBuildVersion(cmd, buildVersion{Version: "v0.3.0", GoVersion: "go1.25.1"})

	assert.NotContains(t, out.String(), "revision")
}
