package geom

// Placement controls where new windows appear
type Placement struct {
	Origin Point // position of the first window
	Step   int   // cascade offset added per already-open window
	Margin Size  // distance kept from the right/bottom viewport edges
}

// Cascade returns the initial rect for a window of the preferred size when
// `open` windows already exist. The window is shrunk to fit the usable area
// and its origin is pulled back so it stays fully on screen.
func Cascade(p Placement, preferred Size, open int, usable Size) Rect {
	w := min(preferred.Width, max(usable.Width, 0))
	h := min(preferred.Height, max(usable.Height, 0))

	offset := open * p.Step
	x := min(p.Origin.X+offset, usable.Width-w-p.Margin.Width)
	y := min(p.Origin.Y+offset, usable.Height-h-p.Margin.Height)

	return Rect{X: max(x, 0), Y: max(y, 0), Width: w, Height: h}
}

// ClampOrigin bounds a dragged origin so at least minVisible of the window
// remains inside the viewport. The window may leave through the far edges.
func ClampOrigin(origin Point, viewport, minVisible Size) Point {
	return Point{
		X: Clamp(origin.X, 0, viewport.Width-minVisible.Width),
		Y: Clamp(origin.Y, 0, viewport.Height-minVisible.Height),
	}
}

// FloorSize raises each dimension of s to at least minSize
func FloorSize(s, minSize Size) Size {
	return Size{
		Width:  max(s.Width, minSize.Width),
		Height: max(s.Height, minSize.Height),
	}
}

// Maximized returns the full viewport minus the reserved taskbar band
func Maximized(viewport Size, band int) Rect {
	return Rect{
		X:      0,
		Y:      0,
		Width:  max(viewport.Width, 0),
		Height: max(viewport.Height-band, 0),
	}
}
