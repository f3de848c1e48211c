package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/roster/internal/fetch"
)

// DetailSpec describes one detail screen variant. A nil record means the
// upstream had no match.
type DetailSpec[R any] struct {
	Kind     string
	Target   string
	Decode   fetch.Decoder[*R]
	NotFound string
	// Render draws a found record in the given width.
	Render func(record *R, width int) string
}

// DetailScreen fetches one record on mount.
type DetailScreen[R any] struct {
	id      string
	ctx     context.Context
	spec    DetailSpec[R]
	ctrl    *fetch.Controller[*R]
	loading *LoadingState

	width  int
	height int
}

// NewDetailScreen creates an idle detail screen.
func NewDetailScreen[R any](ctx context.Context, spec DetailSpec[R], opts ...fetch.Option) *DetailScreen[R] {
	return &DetailScreen[R]{
		id:      nextScreenID(spec.Kind),
		ctx:     ctx,
		spec:    spec,
		ctrl:    fetch.New(spec.Decode, opts...),
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// ID implements Screen.
func (s *DetailScreen[R]) ID() string { return s.id }

// State returns the fetch state.
func (s *DetailScreen[R]) State() fetch.State[*R] { return s.ctrl.State() }

// Mount starts the lookup.
func (s *DetailScreen[R]) Mount() tea.Cmd { return s.start() }

// Unmount cancels a pending lookup.
func (s *DetailScreen[R]) Unmount() { s.ctrl.Close() }

// Resize implements Screen.
func (s *DetailScreen[R]) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *DetailScreen[R]) start() tea.Cmd {
	if s.ctrl.Closed() {
		return nil
	}
	req := s.ctrl.Start(s.ctx, s.spec.Target)
	screen := s.id
	return tea.Batch(s.loading.Init(), func() tea.Msg {
		return settledMsg[*R]{screen: screen, settlement: req.Do()}
	})
}

// Update implements Screen.
func (s *DetailScreen[R]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settledMsg[*R]:
		if msg.screen == s.id {
			s.ctrl.Settle(msg.settlement)
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyEsc:
			return back
		case keyRefresh:
			if s.ctrl.State().IsLoading() {
				return nil
			}
			return s.start()
		}
		return nil
	}

	if s.ctrl.State().IsLoading() {
		return s.loading.Update(msg)
	}
	return nil
}

// View implements Screen.
func (s *DetailScreen[R]) View() string {
	state := s.ctrl.State()
	var body string
	switch {
	case state.IsError():
		body = renderError(state.Message)
	case state.IsSuccess() && state.Payload == nil:
		body = "\n" + InfoStyle.Render(s.spec.NotFound)
	case state.IsSuccess():
		body = s.spec.Render(state.Payload, max(s.width-borderPadding, minHeight))
	default:
		return RenderLoading(s.loading)
	}

	var content strings.Builder
	content.WriteString(body)
	content.WriteString("\n\n" + SubtleStyle.Render(detailHelp))
	return content.String()
}

const detailHelp = "[esc] voltar  [r] recarregar  [q] sair"
