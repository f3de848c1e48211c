package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/cli/pagination"
	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/logging"
	"github.com/rshade/roster/internal/tui"
)

// FetchError is returned when a request settles in the Error state. Its
// message is the state's user-visible message.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// failed converts an Error state into a FetchError.
func failed[T any](state fetch.State[T]) error {
	return &FetchError{Message: state.Message, Err: state.Err}
}

// outcome returns nil for a Success state, the FetchError for an Error
// state, and the cancellation cause for a request that never settled.
func outcome[T any](ctx context.Context, state fetch.State[T]) error {
	switch {
	case state.IsSuccess():
		return nil
	case state.IsError():
		return failed(state)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fetch.ErrCancelled
}

// listFlags are the output flags shared by list commands.
type listFlags struct {
	output string
	paging pagination.Params
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "",
		"output format: table, json or ndjson (default: interactive on a terminal, else config default)")
}

func addPagingFlags(cmd *cobra.Command, p *pagination.Params, sortFields string) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "page of the printed list, starting at 1 (0 = everything)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "rows per page, requires --page")
	cmd.Flags().StringVar(&p.Sort, "sort", "", "sort printed rows by field[:asc|desc]; fields: "+sortFields)
}

// runsInteractive reports whether cmd will hand the terminal to the TUI.
func runsInteractive(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("output")
	if flag == nil || flag.Changed {
		return false
	}
	return tui.DetectOutputMode(false, false, false) == tui.OutputModeInteractive
}

// outputFormat resolves the non-interactive format from the flag and config.
func outputFormat(flagValue string, cfg *config.Config) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !config.IsValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return format, nil
}

// fetchOptions configures controllers from the config and the command logger.
func fetchOptions(ctx context.Context, cfg *config.Config) []fetch.Option {
	return []fetch.Option{
		fetch.WithTimeout(cfg.HTTP.Timeout),
		fetch.WithLogger(logging.ComponentLogger(*loggerFrom(ctx), "fetch")),
	}
}

// tuiOptions wires the screens to the configured upstreams.
func tuiOptions(ctx context.Context, cfg *config.Config) tui.Options {
	return tui.Options{
		CharactersURL:  cfg.Characters.BaseURL,
		CharacterLimit: cfg.Characters.Limit,
		PostsURL:       cfg.Posts.BaseURL,
		FetchOptions:   fetchOptions(ctx, cfg),
	}
}

// runInteractiveTUI runs model until the user quits. A program stopped by
// ctx reports ctx.Err(); any other failure, a panic included, is wrapped.
func runInteractiveTUI(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
