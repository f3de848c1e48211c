package cli

import (
	"cmp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/cli/pagination"
	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/fetch"
	"github.com/rshade/roster/internal/records"
	"github.com/rshade/roster/internal/tui"
)

// postSorter sorts the printed post list.
//
//nolint:gochecknoglobals // Fixed field table.
var postSorter = pagination.NewSorter(map[string]pagination.CompareFunc[records.Post]{
	"id":     func(a, b records.Post) int { return cmp.Compare(a.ID, b.ID) },
	"title":  func(a, b records.Post) int { return strings.Compare(a.Title, b.Title) },
	"userId": func(a, b records.Post) int { return cmp.Compare(a.UserID, b.UserID) },
})

// newPostsCmd creates the posts command with its show subcommand.
func newPostsCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts",
		Long:  "List placeholder posts. On a terminal the list opens interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPostList(cmd, flags)
		},
	}

	addOutputFlag(cmd, &flags.output)
	addPagingFlags(cmd, &flags.paging, strings.Join(postSorter.ValidFields(), ", "))
	cmd.AddCommand(newPostShowCmd())

	return cmd
}

// newPostShowCmd creates the "posts show ID" command.
func newPostShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPostShow(cmd, args[0], output)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func runPostList(cmd *cobra.Command, flags listFlags) error {
	if err := flags.paging.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if runsInteractive(cmd) {
		return runInteractiveTUI(ctx, tui.NewPostsApp(ctx, tuiOptions(ctx, cfg)))
	}

	format, err := outputFormat(flags.output, cfg)
	if err != nil {
		return err
	}

	ctrl := fetch.New(records.DecodePostList, fetchOptions(ctx, cfg)...)
	defer ctrl.Close()
	state := ctrl.Fetch(ctx, api.PostListURL(cfg.Posts.BaseURL))
	if err := outcome(ctx, state); err != nil {
		return err
	}

	posts, err := postSorter.Sort(state.Payload, flags.paging.Sort)
	if err != nil {
		return err
	}
	return renderPostList(cmd.OutOrStdout(), format, pagination.Apply(posts, flags.paging))
}

func runPostShow(cmd *cobra.Command, id, output string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if runsInteractive(cmd) {
		return runInteractiveTUI(ctx, tui.NewPostDetailApp(ctx, tuiOptions(ctx, cfg), id))
	}

	format, err := outputFormat(output, cfg)
	if err != nil {
		return err
	}

	ctrl := fetch.New(records.DecodePost, fetchOptions(ctx, cfg)...)
	defer ctrl.Close()
	state := ctrl.Fetch(ctx, api.PostDetailURL(cfg.Posts.BaseURL, id))
	if err := outcome(ctx, state); err != nil {
		return err
	}
	return renderPost(cmd.OutOrStdout(), format, state.Payload)
}
