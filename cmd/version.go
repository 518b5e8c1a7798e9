package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(devel)"

// buildVersion is the module version and VCS revision stamped into the binary.
type buildVersion struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

func readBuildVersion() (buildVersion, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildVersion{}, false
	}

	return newBuildVersion(info), true
}

func newBuildVersion(info *debug.BuildInfo) buildVersion {
	v := buildVersion{Version: info.Main.Version, GoVersion: info.GoVersion}
	if v.Version == "" {
		v.Version = unknownVersion
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Revision = setting.Value
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}

	return v
}

func printBuildVersion(cmd *cobra.Command, v buildVersion) {
	cmd.Println("freshreadme version\t", v.Version)

	if v.Revision != "" {
		revision := v.Revision
		if v.Modified {
			revision += " (modified)"
		}

		cmd.Println("revision\t\t", revision)
	}

	cmd.Println("go version\t\t", v.GoVersion)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the freshreadme build version, the source revision and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, ok := readBuildVersion()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			printBuildVersion(cmd, v)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
