package tui

import (
	"context"

	"github.com/rshade/roster/internal/fetch"
)

// Options wires the screens to their upstreams.
type Options struct {
	CharactersURL  string
	CharacterLimit int
	PostsURL       string
	FetchOptions   []fetch.Option
}

// NewCharactersApp returns the navigator for the character variant.
func NewCharactersApp(ctx context.Context, opts Options) *Navigator {
	return NewNavigator(ctx, NewCharacterListScreen(ctx, opts), map[string]ScreenFactory{
		RouteCharacterDetail: func(ctx context.Context, id string) Screen {
			return NewCharacterDetailScreen(ctx, opts, id)
		},
	})
}

// NewPostsApp returns the navigator for the posts variant.
func NewPostsApp(ctx context.Context, opts Options) *Navigator {
	return NewNavigator(ctx, NewPostListScreen(ctx, opts), map[string]ScreenFactory{
		RoutePostDetail: func(ctx context.Context, id string) Screen {
			return NewPostDetailScreen(ctx, opts, id)
		},
	})
}

// NewCharacterDetailApp opens a single character without the catalog.
func NewCharacterDetailApp(ctx context.Context, opts Options, id string) *Navigator {
	return NewNavigator(ctx, NewCharacterDetailScreen(ctx, opts, id), nil)
}

// NewPostDetailApp opens a single post without the list.
func NewPostDetailApp(ctx context.Context, opts Options, id string) *Navigator {
	return NewNavigator(ctx, NewPostDetailScreen(ctx, opts, id), nil)
}
