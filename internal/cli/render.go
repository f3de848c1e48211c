package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/records"
)

// tabPadding is the minimum padding between table columns.
const tabPadding = 2

// Messages printed for empty results.
const (
	msgNoCharacters      = "Nenhum personagem."
	msgNoPosts           = "Nenhum post."
	msgCharacterNotFound = "Personagem não encontrado."
	msgPostNotFound      = "Post não encontrado."
)

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderNDJSON writes one JSON document per item.
func renderNDJSON[T any](w io.Writer, items []T) error {
	encoder := json.NewEncoder(w)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}

// renderStructured handles the json and ndjson formats. It reports false for table.
func renderStructured[T any](w io.Writer, format string, items []T) (bool, error) {
	switch format {
	case config.OutputJSON:
		if items == nil {
			items = []T{}
		}
		return true, renderJSON(w, items)
	case config.OutputNDJSON:
		return true, renderNDJSON(w, items)
	default:
		return false, nil
	}
}

func renderCharacterList(w io.Writer, format string, items []records.ListItem) error {
	if done, err := renderStructured(w, format, items); done {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, msgNoCharacters)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tIMAGE")
	fmt.Fprintln(tw, "--\t----\t-----")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.ID, item.Name, imageColumn(item.Image))
	}
	return tw.Flush()
}

func renderCharacterDetails(w io.Writer, format string, details []records.DetailRecord) error {
	if done, err := renderStructured(w, format, details); done {
		return err
	}
	if len(details) == 0 {
		_, err := fmt.Fprintln(w, msgNoCharacters)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAGE\tGENDER\tRACE")
	fmt.Fprintln(tw, "--\t----\t---\t------\t----")
	for _, d := range details {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Age, d.Gender, d.Race)
	}
	return tw.Flush()
}

// renderCharacterDetail prints one record; nil means the lookup had no match.
func renderCharacterDetail(w io.Writer, format string, record *records.DetailRecord) error {
	if format != config.OutputTable {
		if format == config.OutputJSON {
			return renderJSON(w, record)
		}
		if record == nil {
			return nil
		}
		return renderNDJSON(w, []*records.DetailRecord{record})
	}
	if record == nil {
		_, err := fmt.Fprintln(w, msgCharacterNotFound)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", record.ID)
	fmt.Fprintf(tw, "Nome:\t%s\n", record.Name)
	fmt.Fprintf(tw, "Idade:\t%s\n", record.Age)
	fmt.Fprintf(tw, "Gênero:\t%s\n", record.Gender)
	fmt.Fprintf(tw, "Raça:\t%s\n", record.Race)
	if record.IsDemon() {
		fmt.Fprintf(tw, "Tipo:\t%s\n", "Demônio")
	}
	if record.Image != nil {
		fmt.Fprintf(tw, "Imagem:\t%s\n", *record.Image)
	}
	if record.Description != "" {
		fmt.Fprintf(tw, "Descrição:\t%s\n", record.Description)
	}
	if record.Quote != "" {
		fmt.Fprintf(tw, "Citação:\t%q\n", record.Quote)
	}
	return tw.Flush()
}

func renderPostList(w io.Writer, format string, posts []records.Post) error {
	if done, err := renderStructured(w, format, posts); done {
		return err
	}
	if len(posts) == 0 {
		_, err := fmt.Fprintln(w, msgNoPosts)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tTITLE")
	fmt.Fprintln(tw, "--\t----\t-----")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.UserID, p.Title)
	}
	return tw.Flush()
}

// renderPost prints one post; nil means the upstream answered null.
func renderPost(w io.Writer, format string, post *records.Post) error {
	if format != config.OutputTable {
		if format == config.OutputJSON {
			return renderJSON(w, post)
		}
		if post == nil {
			return nil
		}
		return renderNDJSON(w, []*records.Post{post})
	}
	if post == nil {
		_, err := fmt.Fprintln(w, msgPostNotFound)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", post.ID)
	fmt.Fprintf(tw, "Usuário:\t%d\n", post.UserID)
	fmt.Fprintf(tw, "Título:\t%s\n", post.Title)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", post.Body)
	return err
}

func imageColumn(image *string) string {
	if image == nil {
		return "-"
	}
	return *image
}
