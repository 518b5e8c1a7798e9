package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dmi3/freshreadme/internal/domain"
	m "github.com/dmi3/freshreadme/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "freshreadme"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sourceRootFlagName    = "source-root"
	sourceIncludeFlagName = "source-include"
	sourceExcludeFlagName = "source-exclude"
	docsRootFlagName      = "docs-root"
	docsIncludeFlagName   = "docs-include"
	docsExcludeFlagName   = "docs-exclude"
	tagFlagName           = "tag"
	anchorFlagName        = "anchor"
	parallelFlagName      = "parallel"
	formatFlagName        = "format"
	reportFileFlagName    = "report-file"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"

	sourceRootKey    = "source.root"
	sourceIncludeKey = "source.include"
	sourceExcludeKey = "source.exclude"
	docsRootKey      = "docs.root"
	docsIncludeKey   = "docs.include"
	docsExcludeKey   = "docs.exclude"
	docsAnchorKey    = "docs.anchor"
	markerTagKey     = "marker.tag"
	runParallelKey   = "run.parallel"
	outputFormatKey  = "output.format"
	reportFileKey    = "output.report_file"

	defaultRoot       = "."
	defaultAnchor     = domain.AnchorSourceLink
	defaultFormat     = "text"
	defaultParallel   = 0
	defaultReportFile = ""

	envPrefix = "FRESHREADME"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logFormatKey     = "log.format"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".freshreadme.log"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// Directories that never hold snippets and files the tool writes itself.
var defaultIgnored = []string{"**/.git", "**/node_modules", "**/vendor", "**/.freshreadme-*", "**/.freshreadme.log*"}

var (
	defaultSourceInclude = []string{}
	defaultSourceExclude = append([]string{"**/*.md", "**/*.markdown"}, defaultIgnored...)
	defaultDocsInclude   = []string{"**/*.md", "**/*.markdown"}
	defaultDocsExclude   = append([]string{}, defaultIgnored...)
)

var globalLogger *slog.Logger

var setupConfigOnce sync.Once

// configErr is set when the config file exists but cannot be parsed. It is
// returned before any command runs.
var configErr error

// setupConfig registers the config file, environment and defaults with viper.
// It runs before any flag is declared so flag defaults show configured values.
func setupConfig() {
	setupConfigOnce.Do(readConfig)
}

func readConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sourceRootKey, defaultRoot)
	viper.SetDefault(sourceIncludeKey, defaultSourceInclude)
	viper.SetDefault(sourceExcludeKey, defaultSourceExclude)
	viper.SetDefault(docsRootKey, defaultRoot)
	viper.SetDefault(docsIncludeKey, defaultDocsInclude)
	viper.SetDefault(docsExcludeKey, defaultDocsExclude)
	viper.SetDefault(docsAnchorKey, defaultAnchor)
	viper.SetDefault(markerTagKey, domain.DefaultMarkerTag)
	viper.SetDefault(runParallelKey, defaultParallel)
	viper.SetDefault(outputFormatKey, defaultFormat)
	viper.SetDefault(reportFileKey, defaultReportFile)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logFormatKey, defaultLogFormat)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configErr = fmt.Errorf("%w: read %s: %w", m.ErrConfiguration, configFileName, err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric levels such as -4 are accepted too.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// resolveLogLevel picks the level for the run. --verbose always wins over
// the configured log.level.
func resolveLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
}

// configureLogger points the default slog logger at a rotating log file.
// log.format selects between the text and json handlers.
func configureLogger(logPath string, verbose bool) {
	logPath = strings.TrimSpace(logPath)
	if logPath == "" {
		logPath = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if logPath == "" {
		logPath = defaultLogFilename
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	opts := &slog.HandlerOptions{AddSource: true, Level: resolveLogLevel(verbose)}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(viper.GetString(logFormatKey)), "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	globalLogger = slog.New(handler).With("pid", os.Getpid())
	slog.SetDefault(globalLogger)
}
