// Package render turns scored results into standalone SVG cards.
// It owns all layout and color decisions; the scoring pipeline never
// sees any of this.
package render

// Theme is a read-only card color set. Themes are plain values handed
// to the renderer, never process-wide state.
type Theme struct {
	Name       string
	Title      string
	Text       string
	Icon       string
	Background string
	Border     string
	Ring       string
}

var themes = map[string]Theme{
	"default": {
		Name:       "default",
		Title:      "#2f80ed",
		Text:       "#434d58",
		Icon:       "#4c71f2",
		Background: "#fffefe",
		Border:     "#e4e2e2",
		Ring:       "#2f80ed",
	},
	"dark": {
		Name:       "dark",
		Title:      "#fff",
		Text:       "#9f9f9f",
		Icon:       "#79ff97",
		Background: "#151515",
		Border:     "#e4e2e2",
		Ring:       "#fff",
	},
	"radical": {
		Name:       "radical",
		Title:      "#fe428e",
		Text:       "#a9fef7",
		Icon:       "#f8d847",
		Background: "#141321",
		Border:     "#e4e2e2",
		Ring:       "#fe428e",
	},
	"gruvbox": {
		Name:       "gruvbox",
		Title:      "#fabd2f",
		Text:       "#8ec07c",
		Icon:       "#fe8019",
		Background: "#282828",
		Border:     "#e4e2e2",
		Ring:       "#fabd2f",
	},
	"tokyonight": {
		Name:       "tokyonight",
		Title:      "#70a5fd",
		Text:       "#38bdae",
		Icon:       "#bf91f3",
		Background: "#1a1b27",
		Border:     "#e4e2e2",
		Ring:       "#70a5fd",
	},
}

// DefaultLanguageColor fills in for languages the upstream source has
// no color for.
const DefaultLanguageColor = "#586069"

// ThemeByName resolves a theme, falling back to the default theme for
// unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}
