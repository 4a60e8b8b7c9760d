package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/navgrid/gridgraph"
)

// ErrInvalidScale indicates a non-positive pixels-per-cell scale.
var ErrInvalidScale = errors.New("render: scale must be positive")

// Cell colours. Cell (x,y) covers the square at pixel (y*scale, x*scale):
// rows run down the image, columns across.
var (
	ColorOpen    color.Color = color.RGBA{0xee, 0xee, 0xee, 0xff}
	ColorBlocked color.Color = color.RGBA{0x44, 0x44, 0x44, 0xff}
	ColorOnPath  color.Color = color.RGBA{0xff, 0xd7, 0x80, 0xff}
	ColorStart   color.Color = color.RGBA{0x00, 0xc8, 0x00, 0xff}
	ColorTarget  color.Color = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColorRoute   color.Color = color.RGBA{0xd0, 0x00, 0x00, 0xff}
)

// Image draws g with on-path cells highlighted.
func Image(g *gridgraph.Grid, scale int) (image.Image, error) {
	dc, err := drawCells(g, scale)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// ImageRoute draws g and strokes route through cell centres, in order.
// Consecutive route coordinates must be 4-adjacent for the line to follow
// the grid; no check is made.
func ImageRoute(g *gridgraph.Grid, route []gridgraph.Coord, scale int) (image.Image, error) {
	dc, err := drawCells(g, scale)
	if err != nil {
		return nil, err
	}
	strokeRoute(dc, route, scale)
	return dc.Image(), nil
}

// SavePNG writes the ImageRoute rendering of g to path. A nil route draws
// the cells only.
func SavePNG(path string, g *gridgraph.Grid, route []gridgraph.Coord, scale int) error {
	dc, err := drawCells(g, scale)
	if err != nil {
		return err
	}
	strokeRoute(dc, route, scale)
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	return nil
}

func drawCells(g *gridgraph.Grid, scale int) (*gg.Context, error) {
	if err := check(g); err != nil {
		return nil, err
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	xMax, yMax := g.Dims()
	dc := gg.NewContext(yMax*scale, xMax*scale)
	dc.SetColor(ColorOpen)
	dc.Clear()

	s := float64(scale)
	for _, c := range g.Cells() {
		fill := cellColor(c)
		if fill == ColorOpen {
			continue
		}
		dc.SetColor(fill)
		dc.DrawRectangle(float64(c.Y)*s, float64(c.X)*s, s, s)
		dc.Fill()
	}
	return dc, nil
}

func cellColor(c gridgraph.Cell) color.Color {
	switch c.Kind {
	case gridgraph.Blocked:
		return ColorBlocked
	case gridgraph.Start:
		return ColorStart
	case gridgraph.Target:
		return ColorTarget
	}
	if c.OnPath {
		return ColorOnPath
	}
	return ColorOpen
}

func strokeRoute(dc *gg.Context, route []gridgraph.Coord, scale int) {
	if len(route) < 2 {
		return
	}
	s := float64(scale)
	center := func(c gridgraph.Coord) (float64, float64) {
		return float64(c.Y)*s + s/2, float64(c.X)*s + s/2
	}
	dc.SetColor(ColorRoute)
	dc.SetLineWidth(s / 4)
	dc.MoveTo(center(route[0]))
	for _, c := range route[1:] {
		dc.LineTo(center(c))
	}
	dc.Stroke()
}
