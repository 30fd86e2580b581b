package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPlacement = Placement{
	Origin: Point{X: 80, Y: 40},
	Step:   28,
	Margin: Size{Width: 40, Height: 80},
}

func TestCascade(t *testing.T) {
	viewport := Size{Width: 1920, Height: 1080}

	tests := []struct {
		name      string
		preferred Size
		open      int
		viewport  Size
		want      Rect
	}{
		{
			name:      "first window at origin",
			preferred: Size{Width: 750, Height: 620},
			open:      0,
			viewport:  viewport,
			want:      Rect{X: 80, Y: 40, Width: 750, Height: 620},
		},
		{
			name:      "second window cascades",
			preferred: Size{Width: 820, Height: 560},
			open:      1,
			viewport:  viewport,
			want:      Rect{X: 108, Y: 68, Width: 820, Height: 560},
		},
		{
			name:      "pulled back from right and bottom edges",
			preferred: Size{Width: 560, Height: 420},
			open:      30,
			viewport:  Size{Width: 1000, Height: 700},
			want:      Rect{X: 400, Y: 200, Width: 560, Height: 420},
		},
		{
			name:      "shrunk to a tiny viewport",
			preferred: Size{Width: 750, Height: 620},
			open:      0,
			viewport:  Size{Width: 400, Height: 300},
			want:      Rect{X: 0, Y: 0, Width: 400, Height: 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cascade(testPlacement, tt.preferred, tt.open, tt.viewport)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampOrigin(t *testing.T) {
	viewport := Size{Width: 1280, Height: 720}
	minVisible := Size{Width: 200, Height: 80}

	assert.Equal(t, Point{X: 180, Y: 90}, ClampOrigin(Point{X: 180, Y: 90}, viewport, minVisible))
	assert.Equal(t, Point{X: 0, Y: 0}, ClampOrigin(Point{X: -50, Y: -10}, viewport, minVisible))
	assert.Equal(t, Point{X: 1080, Y: 640}, ClampOrigin(Point{X: 5000, Y: 5000}, viewport, minVisible))

	// A viewport smaller than the visible minimum pins the origin at zero.
	assert.Equal(t, Point{}, ClampOrigin(Point{X: 30, Y: 30}, Size{Width: 100, Height: 50}, minVisible))
}

func TestFloorSize(t *testing.T) {
	minSize := Size{Width: 320, Height: 240}
	assert.Equal(t, Size{Width: 320, Height: 240}, FloorSize(Size{Width: 10, Height: -40}, minSize))
	assert.Equal(t, Size{Width: 900, Height: 240}, FloorSize(Size{Width: 900, Height: 100}, minSize))
}

func TestMaximized(t *testing.T) {
	assert.Equal(t, Rect{Width: 1920, Height: 1036}, Maximized(Size{Width: 1920, Height: 1080}, 44))
	assert.Equal(t, Rect{Width: 10, Height: 0}, Maximized(Size{Width: 10, Height: 20}, 44))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 14, Y: 14}))
	assert.False(t, r.Contains(Point{X: 15, Y: 10}))
	assert.False(t, r.Contains(Point{X: 9, Y: 12}))
}
