package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/logging"
)

// setupLogging builds the command logger from the config and the --debug flag
// and stores it, with a trace id, in the command context.
//
// Interactive sessions never log to the terminal: without a configured file,
// debug logs go to the default log file and other logs are discarded.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug, interactive bool) logging.LogPathResult {
	loggingCfg := cfg.Logging.ToLoggingConfig(interactive)

	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		if interactive && loggingCfg.File == "" {
			if path, err := config.DefaultLogFile(); err == nil {
				loggingCfg.Output = logging.OutputFile
				loggingCfg.File = path
			}
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && !interactive {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// loggerFrom returns the logger stored in ctx, or the package logger.
func loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &logger
}
