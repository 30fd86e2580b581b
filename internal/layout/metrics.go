package layout

import "github.com/kmacinski/demonos/internal/geom"

// Metrics converts between terminal cells and desktop pixels
type Metrics struct {
	Cell        geom.Size // pixels per cell
	TaskbarBand int       // pixels reserved for the taskbar
}

// NewMetrics creates metrics for the given cell size and taskbar band
func NewMetrics(cellWidth, cellHeight, band int) Metrics {
	return Metrics{
		Cell:        geom.Size{Width: max(cellWidth, 1), Height: max(cellHeight, 1)},
		TaskbarBand: band,
	}
}

// TaskbarRows is the number of rows the taskbar band covers, at least one
func (m Metrics) TaskbarRows() int {
	return max((m.TaskbarBand+m.Cell.Height-1)/m.Cell.Height, 1)
}

// Pixel returns the top-left pixel of a cell
func (m Metrics) Pixel(col, row int) geom.Point {
	return geom.Point{X: col * m.Cell.Width, Y: row * m.Cell.Height}
}

// Viewport returns the pixel size of a terminal
func (m Metrics) Viewport(cols, rows int) geom.Size {
	return geom.Size{Width: cols * m.Cell.Width, Height: rows * m.Cell.Height}
}

// Box is a rectangle of cells
type Box struct {
	Col  int
	Row  int
	Cols int
	Rows int
}

// Contains reports whether the cell lies inside b
func (b Box) Contains(col, row int) bool {
	return col >= b.Col && col < b.Col+b.Cols &&
		row >= b.Row && row < b.Row+b.Rows
}

// Cells maps a pixel rect onto the cells it covers. Edges round down, so
// adjacent rects never overlap.
func (m Metrics) Cells(r geom.Rect) Box {
	col, row := r.X/m.Cell.Width, r.Y/m.Cell.Height
	return Box{
		Col:  col,
		Row:  row,
		Cols: max((r.X+r.Width)/m.Cell.Width-col, 1),
		Rows: max((r.Y+r.Height)/m.Cell.Height-row, 1),
	}
}
