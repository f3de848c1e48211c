package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Empty(t *testing.T) {
	m := New[int](nil, 5, renderInt)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Empty(t, m.View())
	assert.Equal(t, 0, m.Len())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		wantCursor int
		wantOffset int
	}{
		{name: "down", keys: []tea.KeyMsg{{Type: tea.KeyDown}}, wantCursor: 1},
		{name: "up stops at top", keys: []tea.KeyMsg{{Type: tea.KeyUp}}, wantCursor: 0},
		{name: "vim keys", keys: []tea.KeyMsg{runes("j"), runes("j"), runes("k")}, wantCursor: 1},
		{name: "end", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, wantCursor: 19, wantOffset: 15},
		{name: "G then g", keys: []tea.KeyMsg{runes("G"), runes("g")}, wantCursor: 0},
		{name: "page down", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}}, wantCursor: 5, wantOffset: 1},
		{name: "page up clamps", keys: []tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyPgUp}, {Type: tea.KeyPgUp}}, wantCursor: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(seq(20), 5, renderInt)
			for _, k := range tt.keys {
				m.Update(k)
			}
			assert.Equal(t, tt.wantCursor, m.Cursor())
			assert.Equal(t, tt.wantOffset, m.Offset())
		})
	}
}

func TestModel_ViewRendersWindowOnly(t *testing.T) {
	m := New(seq(100), 3, renderInt)
	for range 4 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"  2", "  3", "> 4"}, lines)

	item, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 4, item)
}

func TestModel_SetItemsClampsCursor(t *testing.T) {
	m := New(seq(10), 4, renderInt)
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 9, m.Cursor())

	m.SetItems(seq(3))

	assert.Equal(t, 2, m.Cursor())
	assert.Equal(t, 0, m.Offset())
	assert.Equal(t, 3, m.Len())
}

func TestModel_SetHeight(t *testing.T) {
	m := New(seq(10), 2, renderInt)
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 8, m.Offset())

	m.SetHeight(0)
	assert.Equal(t, 1, m.Height())
	assert.Equal(t, 9, m.Offset())

	m.SetHeight(20)
	assert.Equal(t, 0, m.Offset())
	assert.Len(t, strings.Split(m.View(), "\n"), 10)
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := New(seq(5), 5, renderInt)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 1})
	m.Update(runes("x"))
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 5, m.Height())
}
