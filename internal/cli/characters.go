package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/cli/pagination"
	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/records"
	"github.com/rshade/roster/internal/tui"
)

// characterSorter sorts the printed character list.
//
//nolint:gochecknoglobals // Fixed field table.
var characterSorter = pagination.NewSorter(map[string]pagination.CompareFunc[records.ListItem]{
	"id":   func(a, b records.ListItem) int { return compareIDs(a.ID, b.ID) },
	"name": func(a, b records.ListItem) int { return strings.Compare(a.Name, b.Name) },
})

// characterListOptions holds the flags of the characters command.
type characterListOptions struct {
	listFlags
	details bool
	limit   int
}

// newCharactersCmd creates the characters command: the catalog list, with a
// show subcommand for a single character.
func newCharactersCmd() *cobra.Command {
	var opts characterListOptions

	cmd := &cobra.Command{
		Use:     "characters",
		Aliases: []string{"chars"},
		Short:   "List characters",
		Long:    "List the character catalog. On a terminal the list opens interactively.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCharacterList(cmd, opts)
		},
	}

	addOutputFlag(cmd, &opts.output)
	addPagingFlags(cmd, &opts.paging, strings.Join(characterSorter.ValidFields(), ", "))
	cmd.Flags().BoolVar(&opts.details, "details", false, "fetch and print each character's detail record")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "number of characters requested (0 = config default)")
	cmd.AddCommand(newCharacterShowCmd())

	return cmd
}

// newCharacterShowCmd creates the "characters show ID" command.
func newCharacterShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacterShow(cmd, args[0], output)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func runCharacterList(cmd *cobra.Command, opts characterListOptions) error {
	if err := opts.paging.Validate(); err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", opts.limit)
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	if opts.limit > 0 {
		cfg.Characters.Limit = opts.limit
	}

	if runsInteractive(cmd) {
		return runInteractiveTUI(ctx, tui.NewCharactersApp(ctx, tuiOptions(ctx, cfg)))
	}

	format, err := outputFormat(opts.output, cfg)
	if err != nil {
		return err
	}

	ctrl := fetch.New(records.DecodeCharacterList, fetchOptions(ctx, cfg)...)
	defer ctrl.Close()
	state := ctrl.Fetch(ctx, api.CharacterListURL(cfg.Characters.BaseURL, cfg.Characters.Limit))
	if err := outcome(ctx, state); err != nil {
		return err
	}

	items, err := characterSorter.Sort(state.Payload, opts.paging.Sort)
	if err != nil {
		return err
	}
	items = pagination.Apply(items, opts.paging)
	loggerFrom(ctx).Debug().Ctx(ctx).Int("count", len(items)).Msg("characters listed")

	w := cmd.OutOrStdout()
	if !opts.details {
		return renderCharacterList(w, format, items)
	}

	details, err := fetchCharacterDetails(ctx, cfg, items)
	if err != nil {
		return err
	}
	return renderCharacterDetails(w, format, details)
}

func runCharacterShow(cmd *cobra.Command, id, output string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if runsInteractive(cmd) {
		return runInteractiveTUI(ctx, tui.NewCharacterDetailApp(ctx, tuiOptions(ctx, cfg), id))
	}

	format, err := outputFormat(output, cfg)
	if err != nil {
		return err
	}

	ctrl := fetch.New(records.DecodeCharacterDetail, fetchOptions(ctx, cfg)...)
	defer ctrl.Close()
	state := ctrl.Fetch(ctx, api.CharacterDetailURL(cfg.Characters.BaseURL, id))
	if err := outcome(ctx, state); err != nil {
		return err
	}
	return renderCharacterDetail(cmd.OutOrStdout(), format, state.Payload)
}
