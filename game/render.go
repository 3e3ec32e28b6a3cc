package game

// Payload is the declarative board description handed to a rendering
// collaborator: board style and dimensions, flattened per-cell piece
// encoding, a symbol legend, and optional overlay annotations. The full
// schema is the renderer's contract; this package only fixes the shape
// games produce.
type Payload struct {
	Board       BoardSpec         `json:"board"`
	Legend      map[string]string `json:"legend,omitempty"`
	Pieces      string            `json:"pieces"`
	Annotations []Annotation      `json:"annotations,omitempty"`
}

// BoardSpec names the board style and its declared dimensions.
type BoardSpec struct {
	Style  string `json:"style"`
	Width  int    `json:"width"`
	Height int    `json:"height,omitempty"`
}

// Annotation is an overlay marker over one or more cells.
type Annotation struct {
	Type    string   `json:"type"`
	Targets []string `json:"targets"`
}
