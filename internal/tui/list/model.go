package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. selected reports whether the row has the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a windowed list with a cursor.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]

	cursor int
	offset int
	height int
}

// New creates a list showing height rows at a time.
func New[T any](items []T, height int, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{render: render}
	m.SetHeight(height)
	m.SetItems(items)
	return m
}

// SetItems replaces the rows. The cursor keeps its position when it still
// points at a row and is clamped otherwise.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.moveTo(m.cursor)
}

// SetHeight changes the number of visible rows.
func (m *Model[T]) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
	m.moveTo(m.cursor)
}

// Update moves the cursor for navigation keys. Other messages are ignored.
//
//nolint:exhaustive // Only navigation keys matter here.
func (m *Model[T]) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return
	}

	switch key.Type {
	case tea.KeyUp:
		m.moveTo(m.cursor - 1)
	case tea.KeyDown:
		m.moveTo(m.cursor + 1)
	case tea.KeyPgUp:
		m.moveTo(m.cursor - m.height)
	case tea.KeyPgDown:
		m.moveTo(m.cursor + m.height)
	case tea.KeyHome:
		m.moveTo(0)
	case tea.KeyEnd:
		m.moveTo(len(m.items) - 1)
	case tea.KeyRunes:
		switch key.String() {
		case "j":
			m.moveTo(m.cursor + 1)
		case "k":
			m.moveTo(m.cursor - 1)
		case "g":
			m.moveTo(0)
		case "G":
			m.moveTo(len(m.items) - 1)
		}
	default:
	}
}

// moveTo places the cursor at index, clamped, and scrolls just enough to
// keep it visible.
func (m *Model[T]) moveTo(index int) {
	if len(m.items) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(index, 0), len(m.items)-1)

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	// Fill the viewport when rows were removed below it.
	m.offset = max(min(m.offset, len(m.items)-m.height), 0)
}

// View renders the visible rows.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	end := min(m.offset+m.height, len(m.items))

	var sb strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.render(m.items[i], i == m.cursor))
	}
	return sb.String()
}

// Len returns the number of rows.
func (m *Model[T]) Len() int { return len(m.items) }

// Cursor returns the selected index.
func (m *Model[T]) Cursor() int { return m.cursor }

// Offset returns the index of the first visible row.
func (m *Model[T]) Offset() int { return m.offset }

// Height returns the viewport height.
func (m *Model[T]) Height() int { return m.height }

// Selected returns the row under the cursor.
func (m *Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.cursor], true
}
