package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/roster/internal/fetch"
	listview "github.com/rshade/roster/internal/tui/list"
)

// ListSpec describes one list screen variant.
type ListSpec[T any] struct {
	// Kind names the screen in ids and logs.
	Kind string
	// Title is shown above the rows.
	Title string
	// Subtitle is shown under the title.
	Subtitle string
	// Empty is shown when the upstream returns no items.
	Empty string
	// Target is the URL fetched on mount and refresh.
	Target string
	// Decode turns the body into rows.
	Decode fetch.Decoder[[]T]
	// DetailRoute is the navigator route opened on enter.
	DetailRoute string
	// ItemID returns the route id of a row.
	ItemID func(T) string
	// Render draws one row.
	Render listview.RenderFunc[T]
}

// settledMsg carries a settlement back to the screen that started it.
type settledMsg[T any] struct {
	screen     string
	settlement fetch.Settlement[T]
}

// ListScreen fetches a collection on mount and lets the user pick an item.
type ListScreen[T any] struct {
	id      string
	ctx     context.Context
	spec    ListSpec[T]
	ctrl    *fetch.Controller[[]T]
	list    *listview.Model[T]
	loading *LoadingState

	// refreshing keeps the previous rows visible while a refresh runs.
	refreshing bool

	width  int
	height int
}

// NewListScreen creates an idle list screen.
func NewListScreen[T any](ctx context.Context, spec ListSpec[T], opts ...fetch.Option) *ListScreen[T] {
	return &ListScreen[T]{
		id:      nextScreenID(spec.Kind),
		ctx:     ctx,
		spec:    spec,
		ctrl:    fetch.New(spec.Decode, opts...),
		list:    listview.New[T](nil, defaultHeight-chromeHeight, spec.Render),
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// ID implements Screen.
func (s *ListScreen[T]) ID() string { return s.id }

// State returns the fetch state.
func (s *ListScreen[T]) State() fetch.State[[]T] { return s.ctrl.State() }

// Refreshing reports whether a refresh is running over visible rows.
func (s *ListScreen[T]) Refreshing() bool { return s.refreshing }

// Mount starts the initial fetch.
func (s *ListScreen[T]) Mount() tea.Cmd {
	return s.start()
}

// Unmount cancels any pending fetch.
func (s *ListScreen[T]) Unmount() {
	s.ctrl.Close()
}

// Resize implements Screen.
func (s *ListScreen[T]) Resize(width, height int) {
	s.width, s.height = width, height
	s.list.SetHeight(max(height-chromeHeight, minHeight))
}

func (s *ListScreen[T]) start() tea.Cmd {
	if s.ctrl.Closed() {
		return nil
	}
	req := s.ctrl.Start(s.ctx, s.spec.Target)
	screen := s.id
	return tea.Batch(s.loading.Init(), func() tea.Msg {
		return settledMsg[[]T]{screen: screen, settlement: req.Do()}
	})
}

// Update implements Screen.
func (s *ListScreen[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settledMsg[[]T]:
		if msg.screen != s.id || !s.ctrl.Settle(msg.settlement) {
			return nil
		}
		s.refreshing = false
		if state := s.ctrl.State(); state.IsSuccess() {
			s.list.SetItems(state.Payload)
		}
		return nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.State().IsLoading() {
		return s.loading.Update(msg)
	}
	return nil
}

func (s *ListScreen[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	state := s.ctrl.State()
	switch msg.String() {
	case keyRefresh:
		if state.IsLoading() {
			return nil
		}
		// A retry after an error shows the full loading view again.
		s.refreshing = state.IsSuccess()
		return s.start()
	case keyEnter:
		if item, ok := s.list.Selected(); ok && s.hasRows() {
			return navigate(s.spec.DetailRoute, s.spec.ItemID(item))
		}
		return nil
	case keyEsc:
		return back
	}
	if s.hasRows() {
		s.list.Update(msg)
	}
	return nil
}

// hasRows reports whether rows are on screen.
func (s *ListScreen[T]) hasRows() bool {
	state := s.ctrl.State()
	return (state.IsSuccess() || s.refreshing) && s.list.Len() > 0
}

// Selected returns the row under the cursor.
func (s *ListScreen[T]) Selected() (T, bool) {
	return s.list.Selected()
}

// View implements Screen.
func (s *ListScreen[T]) View() string {
	state := s.ctrl.State()
	switch {
	case state.IsError():
		return renderError(state.Message)
	case state.IsLoading() && !s.refreshing, state.IsIdle():
		return RenderLoading(s.loading)
	}

	var content strings.Builder
	title := TitleStyle.Render(s.spec.Title)
	if s.refreshing {
		title += "  " + s.loading.View() + " " + SubtleStyle.Render(msgRefreshing)
	}
	content.WriteString(title + "\n")
	if s.spec.Subtitle != "" {
		content.WriteString(SubtleStyle.Render(s.spec.Subtitle) + "\n")
	}
	content.WriteString("\n")

	if s.list.Len() == 0 {
		content.WriteString(InfoStyle.Render(s.spec.Empty) + "\n")
	} else {
		content.WriteString(s.list.View() + "\n")
	}
	content.WriteString("\n" + SubtleStyle.Render(listHelp))
	return content.String()
}

const listHelp = "[↑/↓] navegar  [enter] abrir  [r] atualizar  [q] sair"

// renderError renders the error view with its retry affordance.
func renderError(message string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		CriticalStyle.Render(msgErrorLabel+message),
		"",
		BoxStyle.Render("[r] "+msgRetry),
	)
}
