// Package cmd provides the root command and CLI setup for freshreadme.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dmi3/freshreadme/internal/adapter"
	"github.com/dmi3/freshreadme/internal/controller"
	"github.com/dmi3/freshreadme/internal/domain"
	m "github.com/dmi3/freshreadme/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

var (
	sourceRootFlag    string
	sourceIncludeFlag []string
	sourceExcludeFlag []string
	docsRootFlag      string
	docsIncludeFlag   []string
	docsExcludeFlag   []string
	tagFlag           string
	anchorFlag        string
	parallelFlag      int
	formatFlag        string
	reportFileFlag    string
	verboseFlag       bool
	logFileFlag       string
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter(".")
	reportStore = adapter.NewReportStore(fsAdapter)
	orchestrator = domain.NewOrchestrator(fsAdapter)
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		orchestrator,
	)
}

const globsHelp = `Globs are matched against slash-separated paths relative to their root
and support "**" for any number of directories:
  - **/*.go        every Go file
  - docs/**/*.md   every Markdown file under docs
  - **/testdata    a directory and everything below it`

const rootLongDescription = `Freshreadme keeps the code examples in your documentation identical to
snippets of real, compiled and tested source code.

Mark a snippet in source with a pair of comments:

  // freshReadmeSnippet: example1
  ...
  // freshReadmeSnippet: example1

and anchor a fenced block in Markdown to it:

  <!-- [freshReadmeSource](src/Example.java#example1) -->
  ` + "```java" + `
  ...
  ` + "```" + `

` + globsHelp

const checkLongDescription = `Report every snippet whose documented copy differs from the source.
Nothing is written. Exits 1 on drift and 2 on structural problems.

` + globsHelp

const updateLongDescription = `Rewrite every stale documented copy with its source snippet, then report
what still needs manual attention.

` + globsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	setupConfig()

	cmd := &cobra.Command{
		Use:           "freshreadme",
		Short:         "Keep documentation code snippets in sync with source",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return configErr
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&sourceRootFlag, sourceRootFlagName, viper.GetString(sourceRootKey), "root directory of the source tree")
	bindFlagToConfig(flags.Lookup(sourceRootFlagName), sourceRootKey)

	flags.StringArrayVar(&sourceIncludeFlag, sourceIncludeFlagName, viper.GetStringSlice(sourceIncludeKey), "only scan source files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(sourceIncludeFlagName), sourceIncludeKey)

	flags.StringArrayVar(&sourceExcludeFlag, sourceExcludeFlagName, viper.GetStringSlice(sourceExcludeKey), "skip source files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(sourceExcludeFlagName), sourceExcludeKey)

	flags.StringVar(&docsRootFlag, docsRootFlagName, viper.GetString(docsRootKey), "root directory of the documentation tree")
	bindFlagToConfig(flags.Lookup(docsRootFlagName), docsRootKey)

	flags.StringArrayVar(&docsIncludeFlag, docsIncludeFlagName, viper.GetStringSlice(docsIncludeKey), "only scan documentation files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(docsIncludeFlagName), docsIncludeKey)

	flags.StringArrayVar(&docsExcludeFlag, docsExcludeFlagName, viper.GetStringSlice(docsExcludeKey), "skip documentation files matching glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(docsExcludeFlagName), docsExcludeKey)

	flags.StringVar(&tagFlag, tagFlagName, viper.GetString(markerTagKey), "tag written in source marker comments")
	bindFlagToConfig(flags.Lookup(tagFlagName), markerTagKey)

	flags.StringVar(&anchorFlag, anchorFlagName, viper.GetString(docsAnchorKey),
		`documentation anchor: "source-link", "marker" or a regex with an "id" or "path" named group`)
	bindFlagToConfig(flags.Lookup(anchorFlagName), docsAnchorKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(runParallelKey), "number of files scanned in parallel (0 = number of CPUs)")
	bindFlagToConfig(flags.Lookup(parallelFlagName), runParallelKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(outputFormatKey), "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), outputFormatKey)

	flags.StringVar(&reportFileFlag, reportFileFlagName, viper.GetString(reportFileKey), "also write the report to this file (json unless --format yaml)")
	bindFlagToConfig(flags.Lookup(reportFileFlagName), reportFileKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// syncArgs collects the sync settings from flags, environment and config file.
func syncArgs() domain.SyncArgs {
	return domain.SyncArgs{
		Source: adapter.FileFilter{
			Root:    m.Path(viper.GetString(sourceRootKey)),
			Include: viper.GetStringSlice(sourceIncludeKey),
			Exclude: viper.GetStringSlice(sourceExcludeKey),
		},
		Docs: adapter.FileFilter{
			Root:    m.Path(viper.GetString(docsRootKey)),
			Include: viper.GetStringSlice(docsIncludeKey),
			Exclude: viper.GetStringSlice(docsExcludeKey),
		},
		Tag:        viper.GetString(markerTagKey),
		Anchor:     viper.GetString(docsAnchorKey),
		Threads:    viper.GetInt(runParallelKey),
		Format:     viper.GetString(outputFormatKey),
		ReportFile: m.Path(viper.GetString(reportFileKey)),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// SIGINT and SIGTERM cancel the run; a cancelled update writes no further files.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		reportError(rootCmd, err)
		os.Exit(exitCode(err))
	}
}
