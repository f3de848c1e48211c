package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/records"
)

const (
	postsTitle    = "Posts"
	postsSubtitle = "Selecione um post para ler"
	postsEmpty    = "Nenhum post."
	postNotFound  = "Post não encontrado."

	postTitleWidth = 60
)

// NewPostListScreen builds the posts screen.
func NewPostListScreen(ctx context.Context, opts Options) *ListScreen[records.Post] {
	return NewListScreen(ctx, ListSpec[records.Post]{
		Kind:        "posts",
		Title:       postsTitle,
		Subtitle:    postsSubtitle,
		Empty:       postsEmpty,
		Target:      api.PostListURL(opts.PostsURL),
		Decode:      records.DecodePostList,
		DetailRoute: RoutePostDetail,
		ItemID:      func(p records.Post) string { return strconv.FormatInt(p.ID, 10) },
		Render:      renderPostItem,
	}, opts.FetchOptions...)
}

// NewPostDetailScreen builds the detail screen for one post id.
func NewPostDetailScreen(ctx context.Context, opts Options, id string) *DetailScreen[records.Post] {
	return NewDetailScreen(ctx, DetailSpec[records.Post]{
		Kind:     "post",
		Target:   api.PostDetailURL(opts.PostsURL, id),
		Decode:   records.DecodePost,
		NotFound: postNotFound,
		Render:   RenderPostDetail,
	}, opts.FetchOptions...)
}

func renderPostItem(p records.Post, selected bool) string {
	title := p.Title
	if len([]rune(title)) > postTitleWidth {
		title = string([]rune(title)[:postTitleWidth-3]) + "..."
	}
	row := fmt.Sprintf(" %4d  %-*s", p.ID, postTitleWidth, title)
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

// RenderPostDetail draws a post.
func RenderPostDetail(p *records.Post, width int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(p.Title) + "\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("#%d · usuário %d", p.ID, p.UserID)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(p.Body))
	return b.String()
}
