package cli

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headless runs a program without a terminal.
var headless = []tea.ProgramOption{ //nolint:gochecknoglobals // Shared test options.
	tea.WithInput(nil),
	tea.WithOutput(io.Discard),
	tea.WithoutSignalHandler(),
}

type stubModel struct {
	init   tea.Cmd
	update func(tea.Msg) tea.Cmd
}

func (m stubModel) Init() tea.Cmd { return m.init }

func (m stubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.update == nil {
		return m, nil
	}
	return m, m.update(msg)
}

func (m stubModel) View() string { return "" }

type explodeMsg struct{}

func TestRunInteractiveTUI(t *testing.T) {
	t.Run("quit is success", func(t *testing.T) {
		err := runInteractiveTUI(context.Background(), stubModel{init: tea.Quit}, headless...)
		require.NoError(t, err)
	})

	t.Run("cancelled context reports the cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)
		t.Cleanup(cancel)

		err := runInteractiveTUI(ctx, stubModel{}, headless...)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("panic is a failure", func(t *testing.T) {
		model := stubModel{
			init: func() tea.Msg { return explodeMsg{} },
			update: func(msg tea.Msg) tea.Cmd {
				if _, ok := msg.(explodeMsg); ok {
					panic("boom")
				}
				return nil
			},
		}

		err := runInteractiveTUI(context.Background(), model, headless...)

		require.Error(t, err)
		require.ErrorIs(t, err, tea.ErrProgramPanic)
		assert.NotErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "failed to run interactive TUI")
	})
}
