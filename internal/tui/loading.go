package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingState wraps the spinner shown while a screen waits on its request.
type LoadingState struct {
	spinner spinner.Model
}

// NewLoadingState creates a loading state with the shared spinner style.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &LoadingState{spinner: s}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner. Ticks that belong to other spinners are ignored.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return cmd
}

// View renders the spinner frame.
func (l *LoadingState) View() string {
	return l.spinner.View()
}

// RenderLoading renders the full loading view.
func RenderLoading(l *LoadingState) string {
	frame := ""
	if l != nil {
		frame = l.View() + " "
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", frame+msgLoading)
}
