package arcade

import "unicode/utf8"

// Tone picks the color a cell is drawn with
type Tone int

const (
	ToneNone Tone = iota
	ToneDim
	ToneAccent
	ToneSecondary
	ToneBright
	ToneSuccess
	ToneMuted
)

// Cell is one character of the rendered field
type Cell struct {
	Rune rune
	Tone Tone
}

// Canvas is a grid of cells that game pixels are scaled onto
type Canvas struct {
	Cols  int
	Rows  int
	cells []Cell
}

// NewCanvas creates a blank canvas
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	c := &Canvas{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
	c.Clear()
	return c
}

// Clear blanks every cell
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// At returns the cell at col,row
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Cell{Rune: ' '}
	}
	return c.cells[row*c.Cols+col]
}

// Set writes one cell, ignoring out of range positions
func (c *Canvas) Set(col, row int, r rune, t Tone) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row*c.Cols+col] = Cell{Rune: r, Tone: t}
}

// col maps a field x coordinate to a column
func (c *Canvas) col(x float64) int {
	return int(x * float64(c.Cols) / FieldWidth)
}

// row maps a field y coordinate to a row
func (c *Canvas) row(y float64) int {
	return int(y * float64(c.Rows) / FieldHeight)
}

// Fill paints the field rectangle x,y,w,h. Anything with a positive size
// covers at least one cell.
func (c *Canvas) Fill(x, y, w, h float64, r rune, t Tone) {
	c0, r0 := c.col(x), c.row(y)
	c1, r1 := max(c.col(x+w), c0+1), max(c.row(y+h), r0+1)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.Set(col, row, r, t)
		}
	}
}

// Point paints the cell containing field position x,y
func (c *Canvas) Point(x, y float64, r rune, t Tone) {
	c.Set(c.col(x), c.row(y), r, t)
}

// Text writes s starting at a cell position
func (c *Canvas) Text(col, row int, s string, t Tone) {
	for _, r := range s {
		c.Set(col, row, r, t)
		col++
	}
}

// Center writes s centered on a row
func (c *Canvas) Center(row int, s string, t Tone) {
	c.Text((c.Cols-utf8.RuneCountInString(s))/2, row, s, t)
}

// Line returns one row of runes, for tests and plain rendering
func (c *Canvas) Line(row int) string {
	rs := make([]rune, c.Cols)
	for col := range rs {
		rs[col] = c.At(col, row).Rune
	}
	return string(rs)
}
