package records

import (
	"strings"

	"golang.org/x/text/cases"
)

// Default values applied when a character field is missing upstream.
const (
	DefaultName        = "Sem nome"
	DefaultDemographic = "-"
	DefaultFreeText    = ""
)

// ListItem is a character as shown on the list screen.
type ListItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// DetailRecord is a character as shown on the detail screen.
type DetailRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Age         string  `json:"age"`
	Gender      string  `json:"gender"`
	Race        string  `json:"race"`
	Description string  `json:"description"`
	Quote       string  `json:"quote"`
	Image       *string `json:"image"`
}

// demonRaces are the race values that select the demon theme, already case folded.
//
//nolint:gochecknoglobals // Fixed lookup table.
var demonRaces = []string{"demon", "demônio"}

// IsDemon reports whether the record's race marks it as a demon.
// The comparison is case-insensitive and understands the Portuguese spelling.
func (r DetailRecord) IsDemon() bool {
	folded := cases.Fold().String(strings.TrimSpace(r.Race))
	for _, race := range demonRaces {
		if folded == race {
			return true
		}
	}
	return false
}

// Initial returns the upper-cased first letter of the name, or "?" when the
// name is empty. Used as the avatar fallback when a character has no image.
func (i ListItem) Initial() string {
	for _, r := range i.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Post is a placeholder post. It is used for both list items and the detail
// record and is decoded without any normalization.
type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}
