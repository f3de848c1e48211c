package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// ScreenFactory builds a detail screen for the item identified by id.
type ScreenFactory func(ctx context.Context, id string) Screen

// Navigator owns the screen stack and routes messages to it.
type Navigator struct {
	ctx    context.Context
	stack  []Screen
	routes map[string]ScreenFactory

	width  int
	height int
	quit   bool
}

// NewNavigator creates a navigator whose root screen is root.
func NewNavigator(ctx context.Context, root Screen, routes map[string]ScreenFactory) *Navigator {
	if ctx == nil {
		ctx = context.Background()
	}
	n := &Navigator{
		ctx:    ctx,
		routes: routes,
		width:  defaultWidth,
		height: defaultHeight,
	}
	if root != nil {
		root.Resize(n.width, n.height)
		n.stack = append(n.stack, root)
	}
	return n
}

// Init mounts the root screen.
func (n *Navigator) Init() tea.Cmd {
	if top := n.Top(); top != nil {
		return top.Mount()
	}
	return tea.Quit
}

// Update implements tea.Model.
func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case keyCtrlC, keyQuit:
			return n, n.Quit()
		}
		if top := n.Top(); top != nil {
			return n, top.Update(msg)
		}
		return n, nil

	case tea.WindowSizeMsg:
		n.width, n.height = msg.Width, msg.Height
		for _, s := range n.stack {
			s.Resize(n.width, n.height)
		}
		return n, nil

	case NavigateMsg:
		return n, n.Navigate(msg.Screen, msg.ID)

	case BackMsg:
		return n, n.Back()
	}

	// Results and spinner ticks go to every live screen; each one ignores
	// what it did not start.
	cmds := make([]tea.Cmd, 0, len(n.stack))
	for _, s := range n.stack {
		cmds = append(cmds, s.Update(msg))
	}
	return n, tea.Batch(cmds...)
}

// View renders the top screen.
func (n *Navigator) View() string {
	if n.quit {
		return ""
	}
	if top := n.Top(); top != nil {
		return top.View()
	}
	return ""
}

// Navigate pushes the detail screen registered under screen for id.
func (n *Navigator) Navigate(screen, id string) tea.Cmd {
	factory, ok := n.routes[screen]
	if !ok {
		zerolog.Ctx(n.ctx).Warn().Str("screen", screen).Msg("no route registered")
		return nil
	}
	next := factory(n.ctx, id)
	next.Resize(n.width, n.height)
	n.stack = append(n.stack, next)
	zerolog.Ctx(n.ctx).Debug().Str("screen", next.ID()).Str("item", id).Msg("screen pushed")
	return next.Mount()
}

// Back unmounts and pops the top screen. Popping the root quits.
func (n *Navigator) Back() tea.Cmd {
	if len(n.stack) <= 1 {
		return n.Quit()
	}
	top := n.stack[len(n.stack)-1]
	top.Unmount()
	n.stack = n.stack[:len(n.stack)-1]
	zerolog.Ctx(n.ctx).Debug().Str("screen", top.ID()).Msg("screen popped")
	return nil
}

// Quit unmounts every screen and ends the program.
func (n *Navigator) Quit() tea.Cmd {
	for i := len(n.stack) - 1; i >= 0; i-- {
		n.stack[i].Unmount()
	}
	n.stack = nil
	n.quit = true
	return tea.Quit
}

// Top returns the visible screen, or nil once the stack is empty.
func (n *Navigator) Top() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}
