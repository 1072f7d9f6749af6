package plotly

// Supported theme names. Anything unrecognized falls back to dark, which is
// what the dashboard host renders by default.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette holds the colors a theme uses across a figure.
type Palette struct {
	Text       string
	Grid       string
	MainLine   string
	Background string
}

// Hover holds the tooltip box colors for a theme.
type Hover struct {
	BgColor     string
	BorderColor string
}

// ThemePalette returns the palette for the given theme name.
func ThemePalette(theme string) Palette {
	if theme == ThemeLight {
		return Palette{
			Text:       "#333333",
			Grid:       "rgba(0, 0, 0, 0.1)",
			MainLine:   "#3B82F6",
			Background: "rgba(0,0,0,0)",
		}
	}
	return Palette{
		Text:       "white",
		Grid:       "rgba(255, 255, 255, 0.1)",
		MainLine:   "#3B82F6",
		Background: "rgba(0,0,0,0)",
	}
}

// ThemeHover returns the tooltip colors for the given theme name.
func ThemeHover(theme string) Hover {
	if theme == ThemeLight {
		return Hover{BgColor: "white", BorderColor: "#cccccc"}
	}
	return Hover{BgColor: "#1f2937", BorderColor: "#374151"}
}
