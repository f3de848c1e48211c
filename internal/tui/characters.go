package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/roster/internal/api"
	"github.com/rshade/roster/internal/records"
)

// Route names.
const (
	RouteCharacterDetail = "character"
	RoutePostDetail      = "post"
)

// Character texts.
const (
	charactersTitle    = "Personagens"
	charactersSubtitle = "Toque em um personagem para ver detalhes"
	charactersEmpty    = "Nenhum personagem."
	characterNotFound  = "Personagem não encontrado."
	imageMarker        = "🖼"
	quoteGlyph         = "❝"

	characterNameWidth = 40
)

// NewCharacterListScreen builds the character catalog screen.
func NewCharacterListScreen(ctx context.Context, opts Options) *ListScreen[records.ListItem] {
	return NewListScreen(ctx, ListSpec[records.ListItem]{
		Kind:        "characters",
		Title:       charactersTitle,
		Subtitle:    charactersSubtitle,
		Empty:       charactersEmpty,
		Target:      api.CharacterListURL(opts.CharactersURL, opts.CharacterLimit),
		Decode:      records.DecodeCharacterList,
		DetailRoute: RouteCharacterDetail,
		ItemID:      func(item records.ListItem) string { return item.ID },
		Render:      renderCharacterItem,
	}, opts.FetchOptions...)
}

// NewCharacterDetailScreen builds the detail screen for one character id.
func NewCharacterDetailScreen(ctx context.Context, opts Options, id string) *DetailScreen[records.DetailRecord] {
	return NewDetailScreen(ctx, DetailSpec[records.DetailRecord]{
		Kind:     "character",
		Target:   api.CharacterDetailURL(opts.CharactersURL, id),
		Decode:   records.DecodeCharacterDetail,
		NotFound: characterNotFound,
		Render:   RenderCharacterDetail,
	}, opts.FetchOptions...)
}

// renderCharacterItem draws the avatar marker and name of one row.
func renderCharacterItem(item records.ListItem, selected bool) string {
	avatar := SubtleStyle.Render("[" + item.Initial() + "]")
	if item.Image != nil {
		avatar = imageMarker
	}
	name := item.Name
	if len([]rune(name)) > characterNameWidth {
		name = string([]rune(name)[:characterNameWidth-3]) + "..."
	}
	row := fmt.Sprintf(" %s  %-*s ›", avatar, characterNameWidth, name)
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

// RenderCharacterDetail draws the character card. Demons get the red accent.
func RenderCharacterDetail(record *records.DetailRecord, width int) string {
	accent := ColorHuman
	kind := "Humano"
	if record.IsDemon() {
		accent = ColorDemon
		kind = "Demônio"
	}
	banner := lipgloss.NewStyle().Foreground(accent).Bold(true)

	var b strings.Builder
	header := banner.Render(strings.ToUpper(record.Name))
	if record.Image != nil {
		header = imageMarker + "  " + header
	}
	b.WriteString(header + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Render(kind) + "\n\n")

	pills := []string{
		renderPill("Idade", record.Age, ColorAge),
		renderPill("Raça", record.Race, accent),
		renderPill("Gênero", titleCase(record.Gender), ColorMuted),
	}
	b.WriteString(strings.Join(pills, " ") + "\n")

	if record.Description != "" {
		b.WriteString("\n" + LabelStyle.Render("Descrição") + "\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Render(record.Description) + "\n")
	}
	if record.Quote != "" {
		quote := QuoteStyle.Width(width).Render(quoteGlyph + " " + record.Quote)
		b.WriteString("\n" + quote + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPill(label, value string, color lipgloss.Color) string {
	return PillStyle.Render(
		LabelStyle.Foreground(color).Render(label+":") + " " + ValueStyle.Render(value),
	)
}

// titleCase capitalizes free-text demographics; the "-" default is kept.
func titleCase(s string) string {
	if s == records.DefaultDemographic {
		return s
	}
	return cases.Title(language.Und).String(s)
}
