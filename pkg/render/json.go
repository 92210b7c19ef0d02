package render

import (
	"encoding/json"
	"io"

	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

// Document is the JSON form of a frame.
type Document struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Layout string         `json:"layout"`
	Rows   []DocumentRow  `json:"rows"`
	Cells  []DocumentCell `json:"cells"`
}

// DocumentRow is one row group.
type DocumentRow struct {
	Group   string `json:"group"`
	Indices []int  `json:"indices"`
}

// DocumentCell is one positioned item.
type DocumentCell struct {
	Index      int          `json:"index"`
	Value      int          `json:"value"`
	Density    grid.Density `json:"density"`
	AllowsMenu bool         `json:"allows_menu"`
	Role       string       `json:"role"`
	Row        int          `json:"row"`
	Column     int          `json:"column"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	W          float64      `json:"w"`
	H          float64      `json:"h"`
	Lifted     bool         `json:"lifted,omitempty"`
	Drop       bool         `json:"drop,omitempty"`
}

// NewDocument converts a frame to its JSON document form.
func NewDocument(f layout.Frame, opts Options) Document {
	doc := Document{
		Width:  f.Width,
		Height: f.Height,
		Rows:   make([]DocumentRow, len(f.Rows)),
		Cells:  make([]DocumentCell, len(f.Cells)),
	}
	items := make([]grid.Item, len(f.Cells))
	for i, row := range f.Rows {
		doc.Rows[i] = DocumentRow{Group: row.Group.Kind.String(), Indices: row.Indices}
	}
	for i, c := range f.Cells {
		items[i] = c.Item
		doc.Cells[i] = DocumentCell{
			Index:      c.Index,
			Value:      c.Item.Value,
			Density:    c.Item.Density,
			AllowsMenu: c.Item.AllowsMenu,
			Role:       c.Role.String(),
			Row:        c.Row,
			Column:     c.Column,
			X:          c.X,
			Y:          c.Y,
			W:          c.W,
			H:          c.H,
			Lifted:     c.Index == opts.Lift,
			Drop:       c.Index == opts.Drop,
		}
	}
	doc.Layout = grid.MustSequence(items...).String()
	return doc
}

// RenderJSON encodes the frame as indented JSON.
func RenderJSON(f layout.Frame, opts Options) ([]byte, error) {
	return json.MarshalIndent(NewDocument(f, opts), "", "  ")
}

// WriteJSON writes the indented JSON document followed by a newline.
func WriteJSON(w io.Writer, f layout.Frame, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(f, opts))
}
