package tui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one entry of the navigation stack. Screens are mutated in place.
type Screen interface {
	// ID identifies the screen instance; asynchronous results carry it.
	ID() string
	// Mount starts the screen's work when it is pushed.
	Mount() tea.Cmd
	// Update handles a message addressed to the screen.
	Update(msg tea.Msg) tea.Cmd
	// View renders the screen.
	View() string
	// Resize sets the available area.
	Resize(width, height int)
	// Unmount releases the screen; pending results are dropped afterwards.
	Unmount()
}

// NavigateMsg asks the navigator to open a detail screen for an item.
type NavigateMsg struct {
	Screen string
	ID     string
}

// BackMsg asks the navigator to pop the current screen.
type BackMsg struct{}

// navigate returns a command that emits a NavigateMsg.
func navigate(screen, id string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: screen, ID: id} }
}

func back() tea.Msg { return BackMsg{} }

//nolint:gochecknoglobals // Process-wide screen sequence.
var screenSeq atomic.Uint64

func nextScreenID(kind string) string {
	return fmt.Sprintf("%s#%d", kind, screenSeq.Add(1))
}
