package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "classic"

// Theme is a named colour set loaded from JSON.
type Theme struct {
	Name   string `json:"name"`   // Identifier used in configuration (e.g., "classic")
	Empty  string `json:"empty"`  // Hex colour of free cells
	Body   string `json:"body"`   // Hex colour of snake segments
	Food   string `json:"food"`   // Hex colour of the food cell
	Header string `json:"header"` // Hex colour of the header text
	Glyph  string `json:"glyph"`  // Rune drawn twice per board cell
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

// Styles holds the resolved tcell styles for a theme.
type Styles struct {
	Empty  tcell.Style
	Body   tcell.Style
	Food   tcell.Style
	Header tcell.Style
	Glyph  rune
}

// LoadThemes loads all themes from the embedded themes.json file.
func LoadThemes() ([]Theme, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// Lookup returns the resolved styles of the named theme.
func Lookup(name string) (Styles, error) {
	themes, err := LoadThemes()
	if err != nil {
		return Styles{}, err
	}
	for i := range themes {
		if themes[i].Name == name {
			return themes[i].Styles()
		}
	}
	return Styles{}, fmt.Errorf("unknown theme %q", name)
}

// Styles parses the theme's colours into tcell styles.
func (t *Theme) Styles() (Styles, error) {
	empty, err := ParseHexColor(t.Empty)
	if err != nil {
		return Styles{}, fmt.Errorf("theme %s empty: %w", t.Name, err)
	}
	body, err := ParseHexColor(t.Body)
	if err != nil {
		return Styles{}, fmt.Errorf("theme %s body: %w", t.Name, err)
	}
	food, err := ParseHexColor(t.Food)
	if err != nil {
		return Styles{}, fmt.Errorf("theme %s food: %w", t.Name, err)
	}
	header, err := ParseHexColor(t.Header)
	if err != nil {
		return Styles{}, fmt.Errorf("theme %s header: %w", t.Name, err)
	}

	return Styles{
		Empty:  tcell.StyleDefault.Foreground(empty),
		Body:   tcell.StyleDefault.Foreground(body),
		Food:   tcell.StyleDefault.Foreground(food),
		Header: tcell.StyleDefault.Foreground(header).Bold(true),
		Glyph:  t.GlyphRune(),
	}, nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *Theme) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '█'
}
