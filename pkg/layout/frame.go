package layout

import "github.com/briancoyner/interactive-grid/pkg/grid"

// Options controls frame geometry. All values are in user units.
type Options struct {
	Width   float64 `toml:"width" json:"width"`
	Spacing float64 `toml:"spacing" json:"spacing"`
	Inset   float64 `toml:"inset" json:"inset"`
}

// DefaultOptions returns a 400 wide frame with 16 unit spacing and inset.
func DefaultOptions() Options {
	return Options{Width: 400, Spacing: 16, Inset: 16}
}

// normalized fills zero fields from DefaultOptions and clamps the inset so
// the usable width stays positive. A negative Spacing or Inset means none.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	switch {
	case o.Spacing == 0:
		o.Spacing = d.Spacing
	case o.Spacing < 0:
		o.Spacing = 0
	}
	switch {
	case o.Inset == 0:
		o.Inset = d.Inset
	case o.Inset < 0:
		o.Inset = 0
	}
	if 2*o.Inset >= o.Width {
		o.Inset = 0
	}
	return o
}

// Cell is the positioned rectangle of one item.
type Cell struct {
	Index  int          `json:"index"`
	Item   grid.Item    `json:"item"`
	Role   grid.RowRole `json:"-"`
	Row    int          `json:"row"`
	Column int          `json:"column"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	W      float64      `json:"w"`
	H      float64      `json:"h"`
}

// CenterX returns the horizontal center of the cell.
func (c Cell) CenterX() float64 { return c.X + c.W/2 }

// CenterY returns the vertical center of the cell.
func (c Cell) CenterY() float64 { return c.Y + c.H/2 }

// Contains reports whether the point lies inside the cell.
func (c Cell) Contains(x, y float64) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

// Frame is a fully positioned grid.
type Frame struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Options Options `json:"options"`
	Rows    []Row   `json:"-"`
	Cells   []Cell  `json:"cells"`
}

// Compute lays out s row by row inside a frame of opts.Width.
func Compute(s grid.Sequence, opts Options) Frame {
	opts = opts.normalized()
	usable := opts.Width - 2*opts.Inset
	half := (usable - opts.Spacing) / 2
	if half < 0 {
		half = usable / 2
	}

	roles := grid.Classify(s)
	rows := Rows(s)
	cells := make([]Cell, s.Len())

	y := opts.Inset
	for r, row := range rows {
		h := row.Group.Height * usable
		for col, idx := range row.Indices {
			w := usable
			if row.Group.Kind != RegularGroup {
				w = half
			}
			cells[idx] = Cell{
				Index:  idx,
				Item:   s.At(idx),
				Role:   roles[idx],
				Row:    r,
				Column: col,
				X:      opts.Inset + float64(col)*(half+opts.Spacing),
				Y:      y,
				W:      w,
				H:      h,
			}
		}
		y += h
		if r < len(rows)-1 {
			y += opts.Spacing
		}
	}

	return Frame{
		Width:   opts.Width,
		Height:  y + opts.Inset,
		Options: opts,
		Rows:    rows,
		Cells:   cells,
	}
}

// IndexAt returns the index of the cell containing the point.
func (f Frame) IndexAt(x, y float64) (int, bool) {
	for _, c := range f.Cells {
		if c.Contains(x, y) {
			return c.Index, true
		}
	}
	return -1, false
}
