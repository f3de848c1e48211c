package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	debug      bool
	configPath string
	timeout    time.Duration
}

// NewRootCmd creates the root Cobra command for the roster CLI.
// It loads configuration, wires up logging and tracing, and registers the
// characters, posts and config command groups.
func NewRootCmd(ver string) *cobra.Command {
	var (
		flags     rootFlags
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:          "roster",
		Short:        "Browse character and post catalogs",
		Long:         "roster: browse the Demon Slayer character catalog and placeholder posts from the terminal",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("timeout") {
				if flags.timeout <= 0 {
					return fmt.Errorf("timeout must be > 0, got %s", flags.timeout)
				}
				cfg.HTTP.Timeout = flags.timeout
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg, flags.debug, runsInteractive(cmd))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"config file (default $ROSTER_HOME/config.yaml or ~/.roster/config.yaml)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0,
		"HTTP timeout per request (0 = use config default)")
	cmd.AddCommand(newCharactersCmd(), newPostsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse characters interactively
  roster characters

  # Print the character list as JSON
  roster characters --output json

  # Print every character with its detail record
  roster characters --details --limit 10

  # Show one character
  roster characters show 7

  # Print the second page of posts sorted by title
  roster posts --page 2 --page-size 20 --sort title

  # Show the effective configuration
  roster config show`
