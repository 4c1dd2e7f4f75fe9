// Package render turns page data into styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
)

// Theme is the colour palette. Colours are ANSI 256 codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	Accent     lipgloss.Color
	Warning    lipgloss.Color
	Border     lipgloss.Color

	RarityColors map[models.Rarity]lipgloss.Color
	EventColors  map[models.EventType]lipgloss.Color
}

// DefaultTheme is the emerald palette of the app on a dark terminal.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	Accent:     lipgloss.Color("35"),  // emerald
	Warning:    lipgloss.Color("203"), // rose
	Border:     lipgloss.Color("240"),

	RarityColors: map[models.Rarity]lipgloss.Color{
		models.RarityCommon:    lipgloss.Color("250"),
		models.RarityRare:      lipgloss.Color("75"),
		models.RarityEpic:      lipgloss.Color("141"),
		models.RarityLegendary: lipgloss.Color("220"),
	},
	EventColors: map[models.EventType]lipgloss.Color{
		models.EventMeeting:   lipgloss.Color("117"),
		models.EventFormation: lipgloss.Color("214"),
		models.EventRetreat:   lipgloss.Color("204"),
	},
}

// RarityColor falls back to NormalText for unknown rarities.
func (t Theme) RarityColor(r models.Rarity) lipgloss.Color {
	if c, ok := t.RarityColors[r]; ok {
		return c
	}
	return t.NormalText
}

// EventColor falls back to FaintText for untyped events.
func (t Theme) EventColor(e models.EventType) lipgloss.Color {
	if c, ok := t.EventColors[e]; ok {
		return c
	}
	return t.FaintText
}

// LiturgicalColor maps the provider's colour name to a terminal colour.
// Unknown names read as ordinary time green.
func LiturgicalColor(name string) lipgloss.Color {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "verde"):
		return lipgloss.Color("35")
	case strings.Contains(n, "roxo"):
		return lipgloss.Color("91")
	case strings.Contains(n, "branco"):
		return lipgloss.Color("255")
	case strings.Contains(n, "vermelho"):
		return lipgloss.Color("161")
	case strings.Contains(n, "rosa"):
		return lipgloss.Color("211")
	default:
		return lipgloss.Color("35")
	}
}
