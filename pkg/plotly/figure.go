package plotly

// Trace is one entry of a figure's data array. Concrete trace structs
// (Pie, Bar, Scatter, Choropleth) satisfy it; the Type field they carry
// selects the plotly.js trace type.
type Trace any

// Figure is a complete plotly.js figure specification.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
	Config *Config `json:"config,omitempty"`
}

// Config holds the plotly.js render options. Both flags are emitted even
// when false so the host does not fall back to its own defaults.
type Config struct {
	DisplayModeBar bool `json:"displayModeBar"`
	ScrollZoom     bool `json:"scrollZoom"`
}

// DefaultConfig disables the mode bar and scroll zoom so charts render as
// fixed, non-interactive panels inside the dashboard grid.
func DefaultConfig() *Config {
	return &Config{DisplayModeBar: false, ScrollZoom: false}
}

// Font styles a piece of figure text.
type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Pie is a pie or donut trace. Type must be "pie".
type Pie struct {
	Type          string     `json:"type"`
	Labels        []string   `json:"labels"`
	Values        []float64  `json:"values"`
	Hole          float64    `json:"hole,omitempty"`
	Marker        *PieMarker `json:"marker,omitempty"`
	TextInfo      string     `json:"textinfo,omitempty"`
	TextPosition  string     `json:"textposition,omitempty"`
	TextFont      *Font      `json:"textfont,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	CustomData    []string   `json:"customdata,omitempty"`
}

// PieMarker assigns one color per slice.
type PieMarker struct {
	Colors []string `json:"colors,omitempty"`
}

// Bar is a bar trace. Type must be "bar". X and Y are untyped because a
// vertical bar puts categories on X and values on Y while a horizontal bar
// (Orientation "h") swaps them.
type Bar struct {
	Type          string     `json:"type"`
	X             any        `json:"x"`
	Y             any        `json:"y"`
	Orientation   string     `json:"orientation,omitempty"`
	Marker        *BarMarker `json:"marker,omitempty"`
	Text          []string   `json:"text,omitempty"`
	TextPosition  string     `json:"textposition,omitempty"`
	TextFont      *Font      `json:"textfont,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	CustomData    []string   `json:"customdata,omitempty"`
}

// BarMarker colors the bars: a single color string or a []string with one
// color per bar.
type BarMarker struct {
	Color any `json:"color,omitempty"`
}

// Scatter is a scatter/line trace. Type must be "scatter".
type Scatter struct {
	Type          string         `json:"type"`
	X             []string       `json:"x"`
	Y             []float64      `json:"y"`
	Mode          string         `json:"mode,omitempty"`
	Name          string         `json:"name,omitempty"`
	Line          *Line          `json:"line,omitempty"`
	Marker        *ScatterMarker `json:"marker,omitempty"`
	HoverTemplate string         `json:"hovertemplate,omitempty"`
	CustomData    []string       `json:"customdata,omitempty"`
	HoverLabel    *HoverLabel    `json:"hoverlabel,omitempty"`
}

// Line styles the connecting line of a scatter trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// ScatterMarker styles the point markers of a scatter trace.
type ScatterMarker struct {
	Size int `json:"size,omitempty"`
}

// HoverLabel styles the hover tooltip box.
type HoverLabel struct {
	BgColor     string `json:"bgcolor,omitempty"`
	BorderColor string `json:"bordercolor,omitempty"`
	Font        *Font  `json:"font,omitempty"`
}

// Choropleth is a map trace. Type must be "choropleth".
type Choropleth struct {
	Type          string    `json:"type"`
	Locations     []string  `json:"locations"`
	Z             []float64 `json:"z"`
	LocationMode  string    `json:"locationmode,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
}

// ColorBar styles the choropleth color scale legend.
type ColorBar struct {
	Title    *Title `json:"title,omitempty"`
	TickFont *Font  `json:"tickfont,omitempty"`
}
